package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/martinhruska/scopeburn/internal/domain"
)

// Project options

type ProjectOption func(*domain.Project)

func WithPriority(p int) ProjectOption {
	return func(pr *domain.Project) { pr.Priority = p }
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(pr *domain.Project) { pr.Status = s }
}

func WithDeadline(d time.Time) ProjectOption {
	return func(pr *domain.Project) { pr.Deadline = &d }
}

func WithStartedAt(d time.Time) ProjectOption {
	return func(pr *domain.Project) { pr.StartedAt = &d }
}

func WithRole(role string, planned, done float64) ProjectOption {
	return func(pr *domain.Project) {
		pr.SetRole(role, domain.RoleEffort{PlannedMandays: planned, DoneValue: done})
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Priority:  100,
		Status:    domain.ProjectNotStarted,
		Roles:     make(map[string]domain.RoleEffort),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Team member options

type MemberOption func(*domain.TeamMember)

func WithFTE(fte float64) MemberOption {
	return func(m *domain.TeamMember) { m.FTE = fte }
}

func NewTestMember(name, role string, opts ...MemberOption) *domain.TeamMember {
	now := time.Now().UTC()
	m := &domain.TeamMember{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      role,
		FTE:       1.0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func NewTestAssignment(projectID, memberID, role string, allocation float64) *domain.Assignment {
	return &domain.Assignment{
		ProjectID:     projectID,
		MemberID:      memberID,
		Role:          role,
		AllocationFTE: allocation,
		CreatedAt:     time.Now().UTC(),
	}
}
