package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/martinhruska/scopeburn/internal/domain"
	"github.com/martinhruska/scopeburn/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectNotStarted
	}
	if p.Status == domain.ProjectInProgress && p.StartedAt == nil {
		p.StartedAt = &now
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

// SetProgress updates only the done value of a role, keeping the plan intact.
func (s *projectService) SetProgress(ctx context.Context, projectID, role string, done float64) error {
	if done < 0 {
		return fmt.Errorf("done value must not be negative")
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	effort, ok := p.Roles[role]
	if !ok {
		return fmt.Errorf("role %q not planned on project %q", role, p.Name)
	}
	return s.projects.SetRoleEffort(ctx, projectID, role, effort.PlannedMandays, done)
}

func (s *projectService) SetRoleEffort(ctx context.Context, projectID, role string, planned, done float64) error {
	if role == "" {
		return fmt.Errorf("role is required")
	}
	if planned < 0 || done < 0 {
		return fmt.Errorf("planned and done values must not be negative")
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return err
	}
	return s.projects.SetRoleEffort(ctx, projectID, role, planned, done)
}

func (s *projectService) RemoveRole(ctx context.Context, projectID, role string) error {
	return s.projects.RemoveRole(ctx, projectID, role)
}

func (s *projectService) SetStatus(ctx context.Context, projectID string, status domain.ProjectStatus) error {
	if !domain.ValidProjectStatuses[string(status)] {
		return fmt.Errorf("invalid project status %q", status)
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	p.Status = status
	if status == domain.ProjectInProgress && p.StartedAt == nil {
		now := time.Now().UTC()
		p.StartedAt = &now
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

// Start marks a project in progress, recording the start moment the priority
// sequencer anchors to.
func (s *projectService) Start(ctx context.Context, projectID string) error {
	return s.SetStatus(ctx, projectID, domain.ProjectInProgress)
}

func (s *projectService) Archive(ctx context.Context, id string) error {
	return s.projects.Archive(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Status != domain.ProjectArchived {
			return fmt.Errorf("project must be archived before deletion (use --force to override)")
		}
	}
	return s.projects.Delete(ctx, id)
}
