package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/martinhruska/scopeburn/internal/domain"
)

// ScopeBundle is the converted import: domain objects ready for persistence
// in one transaction. Workflows and Assignments are keyed/resolved against
// the generated project IDs.
type ScopeBundle struct {
	Settings    *domain.ScopeSettings
	Members     []*domain.TeamMember
	Projects    []*domain.Project
	Workflows   map[string]*domain.Workflow
	Assignments []*domain.Assignment
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*ScopeBundle, error) {
	now := time.Now().UTC()
	bundle := &ScopeBundle{Workflows: make(map[string]*domain.Workflow)}

	if s := schema.Settings; s != nil {
		settings := domain.DefaultScopeSettings()
		if s.IncludeHolidays != nil {
			settings.IncludeHolidays = *s.IncludeHolidays
		}
		if s.Country != "" {
			settings.Country = s.Country
		}
		settings.Subdivision = s.Subdivision
		bundle.Settings = &settings
	}

	memberIDs := make(map[string]string)
	for _, mi := range schema.Members {
		m := &domain.TeamMember{
			ID:        uuid.New().String(),
			Name:      mi.Name,
			Role:      mi.Role,
			FTE:       1.0,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if mi.FTE != nil {
			m.FTE = *mi.FTE
		}
		for _, vi := range mi.Vacations {
			start, err := time.Parse("2006-01-02", vi.Start)
			if err != nil {
				return nil, fmt.Errorf("parsing vacation start: %w", err)
			}
			end, err := time.Parse("2006-01-02", vi.End)
			if err != nil {
				return nil, fmt.Errorf("parsing vacation end: %w", err)
			}
			m.Vacations = append(m.Vacations, domain.Vacation{
				ID:        uuid.New().String(),
				MemberID:  m.ID,
				StartDate: start,
				EndDate:   end,
				Note:      vi.Note,
			})
		}
		memberIDs[mi.Name] = m.ID
		bundle.Members = append(bundle.Members, m)
	}

	for i, pi := range schema.Projects {
		p := &domain.Project{
			ID:        uuid.New().String(),
			Name:      pi.Name,
			Priority:  (i + 1) * 10,
			Status:    domain.ProjectNotStarted,
			Roles:     make(map[string]domain.RoleEffort, len(pi.Roles)),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if pi.Priority != nil {
			p.Priority = *pi.Priority
		}
		if pi.Status != "" {
			p.Status = domain.ProjectStatus(pi.Status)
		}
		if p.Status == domain.ProjectInProgress {
			started := now
			p.StartedAt = &started
		}
		if pi.Deadline != nil {
			d, err := time.Parse("2006-01-02", *pi.Deadline)
			if err != nil {
				return nil, fmt.Errorf("parsing deadline: %w", err)
			}
			p.Deadline = &d
		}
		if pi.StartDay != nil {
			d, err := time.Parse("2006-01-02", *pi.StartDay)
			if err != nil {
				return nil, fmt.Errorf("parsing start_day: %w", err)
			}
			p.StartDay = &d
		}
		for role, e := range pi.Roles {
			p.Roles[role] = domain.RoleEffort{PlannedMandays: e.Planned, DoneValue: e.Done}
		}
		bundle.Projects = append(bundle.Projects, p)

		if wi := pi.Workflow; wi != nil {
			wf := &domain.Workflow{
				ProjectID: p.ID,
				Parallel:  wi.Parallel,
				Statuses:  make(map[string]domain.WorkerStatus),
			}
			for _, d := range wi.Dependencies {
				wf.Dependencies = append(wf.Dependencies, domain.RoleDependency{FromRole: d.From, ToRole: d.To})
			}
			for role, status := range wi.Statuses {
				wf.Statuses[role] = domain.WorkerStatus(status)
			}
			bundle.Workflows[p.ID] = wf
		}

		for _, ai := range pi.Assignments {
			a := &domain.Assignment{
				ProjectID:     p.ID,
				MemberID:      memberIDs[ai.Member],
				Role:          ai.Role,
				AllocationFTE: 1.0,
				CreatedAt:     now,
			}
			if ai.Allocation != nil {
				a.AllocationFTE = *ai.Allocation
			}
			bundle.Assignments = append(bundle.Assignments, a)
		}
	}

	return bundle, nil
}
