package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/martinhruska/scopeburn/internal/db"
	"github.com/martinhruska/scopeburn/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo over SQLite. A project spans two
// tables: the projects row and its per-role effort rows.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, priority, status, deadline, start_day, started_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Priority,
		string(p.Status),
		nullableTimeToString(p.Deadline, dateLayout),
		nullableTimeToString(p.StartDay, dateLayout),
		nullableTimeToString(p.StartedAt, time.RFC3339),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	for _, role := range p.RoleNames() {
		effort := p.Roles[role]
		if err := r.SetRoleEffort(ctx, p.ID, role, effort.PlannedMandays, effort.DoneValue); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT id, name, priority, status, deadline, start_day, started_at, created_at, updated_at
		FROM projects WHERE id = ?`
	p, err := r.scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadRoles(ctx, []*domain.Project{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	query := `SELECT id, name, priority, status, deadline, start_day, started_at, created_at, updated_at
		FROM projects`
	if !includeArchived {
		query += ` WHERE status != 'archived'`
	}
	query += ` ORDER BY priority, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProjectFromRows(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	if err := r.loadRoles(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, priority = ?, status = ?, deadline = ?, start_day = ?, started_at = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Priority,
		string(p.Status),
		nullableTimeToString(p.Deadline, dateLayout),
		nullableTimeToString(p.StartDay, dateLayout),
		nullableTimeToString(p.StartedAt, time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) SetRoleEffort(ctx context.Context, projectID, role string, planned, done float64) error {
	query := `INSERT INTO project_roles (project_id, role, planned_mandays, done_value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(project_id, role) DO UPDATE SET planned_mandays = excluded.planned_mandays, done_value = excluded.done_value`
	if _, err := r.db.ExecContext(ctx, query, projectID, role, planned, done); err != nil {
		return fmt.Errorf("upserting role effort: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) RemoveRole(ctx context.Context, projectID, role string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM project_roles WHERE project_id = ? AND role = ?`, projectID, role); err != nil {
		return fmt.Errorf("removing role: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Archive(ctx context.Context, id string) error {
	query := `UPDATE projects SET status = 'archived', updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, nowUTC(), id); err != nil {
		return fmt.Errorf("archiving project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) scanProject(row *sql.Row) (*domain.Project, error) {
	var p domain.Project
	var statusStr, createdAtStr, updatedAtStr string
	var deadlineStr, startDayStr, startedAtStr sql.NullString

	err := row.Scan(
		&p.ID, &p.Name, &p.Priority, &statusStr,
		&deadlineStr, &startDayStr, &startedAtStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found")
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	fillProject(&p, statusStr, deadlineStr, startDayStr, startedAtStr, createdAtStr, updatedAtStr)
	return &p, nil
}

func (r *SQLiteProjectRepo) scanProjectFromRows(rows *sql.Rows) (*domain.Project, error) {
	var p domain.Project
	var statusStr, createdAtStr, updatedAtStr string
	var deadlineStr, startDayStr, startedAtStr sql.NullString

	err := rows.Scan(
		&p.ID, &p.Name, &p.Priority, &statusStr,
		&deadlineStr, &startDayStr, &startedAtStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	fillProject(&p, statusStr, deadlineStr, startDayStr, startedAtStr, createdAtStr, updatedAtStr)
	return &p, nil
}

func fillProject(p *domain.Project, status string, deadline, startDay, startedAt sql.NullString, createdAt, updatedAt string) {
	p.Status = domain.ProjectStatus(status)
	p.Deadline = parseNullableTime(deadline, dateLayout)
	p.StartDay = parseNullableTime(startDay, dateLayout)
	p.StartedAt = parseNullableTime(startedAt, time.RFC3339)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	p.Roles = make(map[string]domain.RoleEffort)
}

// loadRoles attaches role effort rows to the given projects in one query.
func (r *SQLiteProjectRepo) loadRoles(ctx context.Context, projects []*domain.Project) error {
	if len(projects) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT project_id, role, planned_mandays, done_value FROM project_roles`)
	if err != nil {
		return fmt.Errorf("loading role efforts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var projectID, role string
		var planned, done float64
		if err := rows.Scan(&projectID, &role, &planned, &done); err != nil {
			return fmt.Errorf("scanning role effort: %w", err)
		}
		if p, ok := byID[projectID]; ok {
			p.Roles[role] = domain.RoleEffort{PlannedMandays: planned, DoneValue: done}
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating role efforts: %w", err)
	}
	return nil
}
