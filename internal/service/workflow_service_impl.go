package service

import (
	"context"
	"fmt"

	"github.com/martinhruska/scopeburn/internal/domain"
	"github.com/martinhruska/scopeburn/internal/repository"
)

type workflowService struct {
	workflows repository.WorkflowRepo
	projects  repository.ProjectRepo
}

func NewWorkflowService(workflows repository.WorkflowRepo, projects repository.ProjectRepo) WorkflowService {
	return &workflowService{workflows: workflows, projects: projects}
}

func (s *workflowService) Get(ctx context.Context, projectID string) (*domain.Workflow, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.workflows.Get(ctx, projectID)
}

func (s *workflowService) SetParallel(ctx context.Context, projectID string, parallel bool) error {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return err
	}
	return s.workflows.SetParallel(ctx, projectID, parallel)
}

// AddDependency records that toRole waits for fromRole. Both roles must be
// planned on the project so the estimator has a workload to order.
func (s *workflowService) AddDependency(ctx context.Context, projectID, fromRole, toRole string) error {
	if fromRole == toRole {
		return fmt.Errorf("role %q cannot depend on itself", fromRole)
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	for _, role := range []string{fromRole, toRole} {
		if _, ok := p.Roles[role]; !ok {
			return fmt.Errorf("role %q not planned on project %q", role, p.Name)
		}
	}
	// Cycles are allowed to persist; the estimator detects them and falls
	// back to the concurrent mode, so adding an edge never fails on graph
	// shape alone.
	return s.workflows.AddDependency(ctx, projectID, domain.RoleDependency{FromRole: fromRole, ToRole: toRole})
}

// HasCycle reports whether the project's dependency graph is cyclic, so
// callers can warn before the estimator falls back.
func (s *workflowService) HasCycle(ctx context.Context, projectID string) (bool, error) {
	wf, err := s.workflows.Get(ctx, projectID)
	if err != nil {
		return false, err
	}
	return hasDependencyCycle(wf), nil
}

func (s *workflowService) RemoveDependency(ctx context.Context, projectID, fromRole, toRole string) error {
	return s.workflows.RemoveDependency(ctx, projectID, domain.RoleDependency{FromRole: fromRole, ToRole: toRole})
}

func (s *workflowService) SetWorkerStatus(ctx context.Context, projectID, role string, status domain.WorkerStatus) error {
	if !domain.ValidWorkerStatuses[string(status)] {
		return fmt.Errorf("invalid worker status %q", status)
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if _, ok := p.Roles[role]; !ok {
		return fmt.Errorf("role %q not planned on project %q", role, p.Name)
	}
	return s.workflows.SetStatus(ctx, projectID, role, status)
}

// hasDependencyCycle reports whether the workflow graph contains a cycle.
// Kahn-style elimination over the dependency edges.
func hasDependencyCycle(wf *domain.Workflow) bool {
	if wf == nil {
		return false
	}
	indegree := make(map[string]int)
	succs := make(map[string][]string)
	for _, d := range wf.Dependencies {
		indegree[d.FromRole] += 0
		indegree[d.ToRole]++
		succs[d.FromRole] = append(succs[d.FromRole], d.ToRole)
	}

	var queue []string
	for role, deg := range indegree {
		if deg == 0 {
			queue = append(queue, role)
		}
	}
	seen := 0
	for len(queue) > 0 {
		role := queue[0]
		queue = queue[1:]
		seen++
		for _, next := range succs[role] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	return seen != len(indegree)
}
