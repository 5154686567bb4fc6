package repository

import (
	"context"

	"github.com/martinhruska/scopeburn/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetRoleEffort(ctx context.Context, projectID, role string, planned, done float64) error
	RemoveRole(ctx context.Context, projectID, role string) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type TeamMemberRepo interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	List(ctx context.Context) ([]*domain.TeamMember, error)
	Update(ctx context.Context, m *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
	AddVacation(ctx context.Context, v *domain.Vacation) error
	DeleteVacation(ctx context.Context, id string) error
}

type AssignmentRepo interface {
	Set(ctx context.Context, a *domain.Assignment) error
	Clear(ctx context.Context, projectID, memberID string) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error)
	ListAll(ctx context.Context) ([]*domain.Assignment, error)
}

type WorkflowRepo interface {
	// Get returns nil (no error) when the project has no workflow record.
	Get(ctx context.Context, projectID string) (*domain.Workflow, error)
	ListAll(ctx context.Context) (map[string]*domain.Workflow, error)
	SetParallel(ctx context.Context, projectID string, parallel bool) error
	AddDependency(ctx context.Context, projectID string, dep domain.RoleDependency) error
	RemoveDependency(ctx context.Context, projectID string, dep domain.RoleDependency) error
	SetStatus(ctx context.Context, projectID, role string, status domain.WorkerStatus) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (domain.ScopeSettings, error)
	Upsert(ctx context.Context, s domain.ScopeSettings) error
}
