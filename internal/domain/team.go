package domain

import "time"

type TeamMember struct {
	ID        string
	Name      string
	Role      string
	FTE       float64
	Vacations []Vacation
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Vacation struct {
	ID        string
	MemberID  string
	StartDate time.Time
	EndDate   time.Time
	Note      string
}

// Contains reports whether the given day falls inside the vacation interval
// (inclusive on both ends). Comparison is by calendar day.
func (v Vacation) Contains(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	return !d.Before(v.StartDate.Truncate(24*time.Hour)) &&
		!d.After(v.EndDate.Truncate(24*time.Hour))
}

// OnVacation reports whether the member has any vacation covering the day.
func (m *TeamMember) OnVacation(day time.Time) bool {
	for _, v := range m.Vacations {
		if v.Contains(day) {
			return true
		}
	}
	return false
}
