package domain

import "time"

// Assignment scopes a member's capacity to one project: AllocationFTE is the
// fraction of that member's time devoted to this project, distinct from the
// member's global FTE.
type Assignment struct {
	ProjectID     string
	MemberID      string
	Role          string
	AllocationFTE float64
	CreatedAt     time.Time
}
