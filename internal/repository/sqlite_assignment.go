package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/martinhruska/scopeburn/internal/db"
	"github.com/martinhruska/scopeburn/internal/domain"
)

type SQLiteAssignmentRepo struct {
	db db.DBTX
}

func NewSQLiteAssignmentRepo(dbtx db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: dbtx}
}

// Set upserts the assignment for a (project, member) pair: re-assigning a
// member replaces their role and allocation rather than erroring.
func (r *SQLiteAssignmentRepo) Set(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (project_id, member_id, role, allocation_fte, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(project_id, member_id) DO UPDATE SET role = excluded.role, allocation_fte = excluded.allocation_fte`
	_, err := r.db.ExecContext(ctx, query,
		a.ProjectID, a.MemberID, a.Role, a.AllocationFTE,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) Clear(ctx context.Context, projectID, memberID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM assignments WHERE project_id = ? AND member_id = ?`, projectID, memberID)
	if err != nil {
		return fmt.Errorf("clearing assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error) {
	return r.list(ctx,
		`SELECT project_id, member_id, role, allocation_fte, created_at FROM assignments WHERE project_id = ?`,
		projectID)
}

func (r *SQLiteAssignmentRepo) ListAll(ctx context.Context) ([]*domain.Assignment, error) {
	return r.list(ctx,
		`SELECT project_id, member_id, role, allocation_fte, created_at FROM assignments`)
}

func (r *SQLiteAssignmentRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		var createdAtStr string
		if err := rows.Scan(&a.ProjectID, &a.MemberID, &a.Role, &a.AllocationFTE, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		assignments = append(assignments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return assignments, nil
}
