package domain

import (
	"sort"
	"time"
)

// RoleEffort is the planned/done pair for one role on a project.
// Done is ambiguous by historical convention: it may hold a percentage
// (0-100) or already-spent mandays. The scheduler package owns the
// disambiguation heuristic; everything else treats Done as opaque.
type RoleEffort struct {
	PlannedMandays float64
	DoneValue      float64
}

type Project struct {
	ID        string
	Name      string
	Priority  int
	Status    ProjectStatus
	Roles     map[string]RoleEffort
	Deadline  *time.Time
	StartDay  *time.Time
	StartedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoleNames returns the project's role labels in deterministic order:
// standard roles first in conventional order, then custom roles sorted.
func (p *Project) RoleNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range StandardRoles {
		if _, ok := p.Roles[r]; ok {
			names = append(names, r)
			seen[r] = true
		}
	}
	var custom []string
	for r := range p.Roles {
		if !seen[r] {
			custom = append(custom, r)
		}
	}
	sort.Strings(custom)
	return append(names, custom...)
}

// TotalPlannedMandays sums the plan across all roles.
func (p *Project) TotalPlannedMandays() float64 {
	var total float64
	for _, e := range p.Roles {
		if e.PlannedMandays > 0 {
			total += e.PlannedMandays
		}
	}
	return total
}

// SetRole upserts the effort record for a role, allocating the map if needed.
func (p *Project) SetRole(role string, e RoleEffort) {
	if p.Roles == nil {
		p.Roles = make(map[string]RoleEffort)
	}
	p.Roles[role] = e
}

// DisplayID returns a short identifier for list output (UUID prefix).
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
