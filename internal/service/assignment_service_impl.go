package service

import (
	"context"
	"fmt"
	"time"

	"github.com/martinhruska/scopeburn/internal/domain"
	"github.com/martinhruska/scopeburn/internal/repository"
)

type assignmentService struct {
	assignments repository.AssignmentRepo
	projects    repository.ProjectRepo
	members     repository.TeamMemberRepo
}

func NewAssignmentService(
	assignments repository.AssignmentRepo,
	projects repository.ProjectRepo,
	members repository.TeamMemberRepo,
) AssignmentService {
	return &assignmentService{assignments: assignments, projects: projects, members: members}
}

// Assign pins a member to a project role. The role does not have to be
// planned on the project yet; an unplanned role simply carries no workload.
func (s *assignmentService) Assign(ctx context.Context, projectID, memberID, role string, allocation float64) error {
	if role == "" {
		return fmt.Errorf("role is required")
	}
	if allocation <= 0 {
		return fmt.Errorf("allocation FTE must be positive")
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return err
	}
	return s.assignments.Set(ctx, &domain.Assignment{
		ProjectID:     projectID,
		MemberID:      memberID,
		Role:          role,
		AllocationFTE: allocation,
		CreatedAt:     time.Now().UTC(),
	})
}

func (s *assignmentService) Unassign(ctx context.Context, projectID, memberID string) error {
	return s.assignments.Clear(ctx, projectID, memberID)
}

func (s *assignmentService) ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error) {
	return s.assignments.ListByProject(ctx, projectID)
}
