package service

import (
	"context"

	"github.com/martinhruska/scopeburn/internal/app"
	"github.com/martinhruska/scopeburn/internal/domain"
	"github.com/martinhruska/scopeburn/internal/importer"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetProgress(ctx context.Context, projectID, role string, done float64) error
	SetRoleEffort(ctx context.Context, projectID, role string, planned, done float64) error
	RemoveRole(ctx context.Context, projectID, role string) error
	SetStatus(ctx context.Context, projectID string, status domain.ProjectStatus) error
	Start(ctx context.Context, projectID string) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type TeamService interface {
	AddMember(ctx context.Context, m *domain.TeamMember) error
	GetMember(ctx context.Context, id string) (*domain.TeamMember, error)
	ListMembers(ctx context.Context) ([]*domain.TeamMember, error)
	UpdateMember(ctx context.Context, m *domain.TeamMember) error
	RemoveMember(ctx context.Context, id string) error
	AddVacation(ctx context.Context, v *domain.Vacation) error
	RemoveVacation(ctx context.Context, id string) error
}

type AssignmentService interface {
	Assign(ctx context.Context, projectID, memberID, role string, allocation float64) error
	Unassign(ctx context.Context, projectID, memberID string) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error)
}

type WorkflowService interface {
	Get(ctx context.Context, projectID string) (*domain.Workflow, error)
	SetParallel(ctx context.Context, projectID string, parallel bool) error
	AddDependency(ctx context.Context, projectID, fromRole, toRole string) error
	RemoveDependency(ctx context.Context, projectID, fromRole, toRole string) error
	SetWorkerStatus(ctx context.Context, projectID, role string, status domain.WorkerStatus) error
	HasCycle(ctx context.Context, projectID string) (bool, error)
}

type SettingsService interface {
	Get(ctx context.Context) (domain.ScopeSettings, error)
	Update(ctx context.Context, s domain.ScopeSettings) error
}

type ForecastService interface {
	Forecast(ctx context.Context, req app.ForecastRequest) (*app.ForecastResponse, error)
	ForecastProject(ctx context.Context, projectID string, req app.ForecastRequest) (*app.ProjectForecastView, error)
	Timeline(ctx context.Context, req app.ForecastRequest) ([]app.TimelineEntry, error)
}

// ImportResult holds the outcome of a scope import.
type ImportResult struct {
	MemberCount     int
	ProjectCount    int
	WorkflowCount   int
	AssignmentCount int
	SettingsApplied bool
}

type ImportService interface {
	ImportScope(ctx context.Context, filePath string) (*ImportResult, error)
	ImportScopeFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
