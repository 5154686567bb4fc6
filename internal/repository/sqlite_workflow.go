package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/martinhruska/scopeburn/internal/db"
	"github.com/martinhruska/scopeburn/internal/domain"
)

// SQLiteWorkflowRepo implements WorkflowRepo over three tables: the workflow
// row (parallel flag), dependency edges, and per-role worker statuses.
// Mutations ensure the workflow row exists first so edges and statuses always
// hang off a parent record.
type SQLiteWorkflowRepo struct {
	db db.DBTX
}

func NewSQLiteWorkflowRepo(dbtx db.DBTX) *SQLiteWorkflowRepo {
	return &SQLiteWorkflowRepo{db: dbtx}
}

func (r *SQLiteWorkflowRepo) ensure(ctx context.Context, projectID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workflows (project_id, parallel_mode) VALUES (?, 0)
		 ON CONFLICT(project_id) DO NOTHING`, projectID)
	if err != nil {
		return fmt.Errorf("ensuring workflow record: %w", err)
	}
	return nil
}

func (r *SQLiteWorkflowRepo) Get(ctx context.Context, projectID string) (*domain.Workflow, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT parallel_mode FROM workflows WHERE project_id = ?`, projectID)

	var parallel int
	if err := row.Scan(&parallel); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning workflow: %w", err)
	}

	wf := &domain.Workflow{
		ProjectID: projectID,
		Parallel:  parallel != 0,
		Statuses:  make(map[string]domain.WorkerStatus),
	}
	if err := r.loadDetails(ctx, map[string]*domain.Workflow{projectID: wf}); err != nil {
		return nil, err
	}
	return wf, nil
}

func (r *SQLiteWorkflowRepo) ListAll(ctx context.Context) (map[string]*domain.Workflow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT project_id, parallel_mode FROM workflows`)
	if err != nil {
		return nil, fmt.Errorf("listing workflows: %w", err)
	}
	defer rows.Close()

	workflows := make(map[string]*domain.Workflow)
	for rows.Next() {
		var projectID string
		var parallel int
		if err := rows.Scan(&projectID, &parallel); err != nil {
			return nil, fmt.Errorf("scanning workflow: %w", err)
		}
		workflows[projectID] = &domain.Workflow{
			ProjectID: projectID,
			Parallel:  parallel != 0,
			Statuses:  make(map[string]domain.WorkerStatus),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workflows: %w", err)
	}
	if err := r.loadDetails(ctx, workflows); err != nil {
		return nil, err
	}
	return workflows, nil
}

func (r *SQLiteWorkflowRepo) loadDetails(ctx context.Context, workflows map[string]*domain.Workflow) error {
	if len(workflows) == 0 {
		return nil
	}

	rows, err := r.db.QueryContext(ctx, `SELECT project_id, from_role, to_role FROM workflow_deps`)
	if err != nil {
		return fmt.Errorf("loading workflow dependencies: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var projectID, from, to string
		if err := rows.Scan(&projectID, &from, &to); err != nil {
			return fmt.Errorf("scanning workflow dependency: %w", err)
		}
		if wf, ok := workflows[projectID]; ok {
			wf.Dependencies = append(wf.Dependencies, domain.RoleDependency{FromRole: from, ToRole: to})
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating workflow dependencies: %w", err)
	}

	statusRows, err := r.db.QueryContext(ctx, `SELECT project_id, role, status FROM workflow_statuses`)
	if err != nil {
		return fmt.Errorf("loading worker statuses: %w", err)
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var projectID, role, status string
		if err := statusRows.Scan(&projectID, &role, &status); err != nil {
			return fmt.Errorf("scanning worker status: %w", err)
		}
		if wf, ok := workflows[projectID]; ok {
			wf.Statuses[role] = domain.WorkerStatus(status)
		}
	}
	return statusRows.Err()
}

func (r *SQLiteWorkflowRepo) SetParallel(ctx context.Context, projectID string, parallel bool) error {
	if err := r.ensure(ctx, projectID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE workflows SET parallel_mode = ? WHERE project_id = ?`,
		boolToInt(parallel), projectID)
	if err != nil {
		return fmt.Errorf("setting parallel mode: %w", err)
	}
	return nil
}

func (r *SQLiteWorkflowRepo) AddDependency(ctx context.Context, projectID string, dep domain.RoleDependency) error {
	if err := r.ensure(ctx, projectID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workflow_deps (project_id, from_role, to_role) VALUES (?, ?, ?)
		 ON CONFLICT(project_id, from_role, to_role) DO NOTHING`,
		projectID, dep.FromRole, dep.ToRole)
	if err != nil {
		return fmt.Errorf("adding workflow dependency: %w", err)
	}
	return nil
}

func (r *SQLiteWorkflowRepo) RemoveDependency(ctx context.Context, projectID string, dep domain.RoleDependency) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM workflow_deps WHERE project_id = ? AND from_role = ? AND to_role = ?`,
		projectID, dep.FromRole, dep.ToRole)
	if err != nil {
		return fmt.Errorf("removing workflow dependency: %w", err)
	}
	return nil
}

func (r *SQLiteWorkflowRepo) SetStatus(ctx context.Context, projectID, role string, status domain.WorkerStatus) error {
	if err := r.ensure(ctx, projectID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workflow_statuses (project_id, role, status) VALUES (?, ?, ?)
		 ON CONFLICT(project_id, role) DO UPDATE SET status = excluded.status`,
		projectID, role, string(status))
	if err != nil {
		return fmt.Errorf("setting worker status: %w", err)
	}
	return nil
}
