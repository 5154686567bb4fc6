package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/martinhruska/scopeburn/internal/db"
	"github.com/martinhruska/scopeburn/internal/domain"
)

// SQLiteTeamMemberRepo implements TeamMemberRepo over SQLite. Members carry
// their vacation intervals; reads always hydrate them.
type SQLiteTeamMemberRepo struct {
	db db.DBTX
}

func NewSQLiteTeamMemberRepo(dbtx db.DBTX) *SQLiteTeamMemberRepo {
	return &SQLiteTeamMemberRepo{db: dbtx}
}

func (r *SQLiteTeamMemberRepo) Create(ctx context.Context, m *domain.TeamMember) error {
	query := `INSERT INTO team_members (id, name, role, fte, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Role, m.FTE,
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting team member: %w", err)
	}
	return nil
}

func (r *SQLiteTeamMemberRepo) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, role, fte, created_at, updated_at FROM team_members WHERE id = ?`, id)

	var m domain.TeamMember
	var createdAtStr, updatedAtStr string
	if err := row.Scan(&m.ID, &m.Name, &m.Role, &m.FTE, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("team member not found")
		}
		return nil, fmt.Errorf("scanning team member: %w", err)
	}
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)

	if err := r.loadVacations(ctx, []*domain.TeamMember{&m}); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *SQLiteTeamMemberRepo) List(ctx context.Context) ([]*domain.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, role, fte, created_at, updated_at FROM team_members ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.FTE, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning team member: %w", err)
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team members: %w", err)
	}
	if err := r.loadVacations(ctx, members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *SQLiteTeamMemberRepo) Update(ctx context.Context, m *domain.TeamMember) error {
	query := `UPDATE team_members SET name = ?, role = ?, fte = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		m.Name, m.Role, m.FTE, m.UpdatedAt.Format(time.RFC3339), m.ID)
	if err != nil {
		return fmt.Errorf("updating team member: %w", err)
	}
	return nil
}

func (r *SQLiteTeamMemberRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting team member: %w", err)
	}
	return nil
}

func (r *SQLiteTeamMemberRepo) AddVacation(ctx context.Context, v *domain.Vacation) error {
	query := `INSERT INTO vacations (id, member_id, start_date, end_date, note) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.MemberID,
		v.StartDate.Format(dateLayout),
		v.EndDate.Format(dateLayout),
		v.Note,
	)
	if err != nil {
		return fmt.Errorf("inserting vacation: %w", err)
	}
	return nil
}

func (r *SQLiteTeamMemberRepo) DeleteVacation(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vacations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting vacation: %w", err)
	}
	return nil
}

func (r *SQLiteTeamMemberRepo) loadVacations(ctx context.Context, members []*domain.TeamMember) error {
	if len(members) == 0 {
		return nil
	}
	byID := make(map[string]*domain.TeamMember, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, member_id, start_date, end_date, note FROM vacations ORDER BY start_date`)
	if err != nil {
		return fmt.Errorf("loading vacations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.Vacation
		var startStr, endStr string
		if err := rows.Scan(&v.ID, &v.MemberID, &startStr, &endStr, &v.Note); err != nil {
			return fmt.Errorf("scanning vacation: %w", err)
		}
		v.StartDate, _ = time.Parse(dateLayout, startStr)
		v.EndDate, _ = time.Parse(dateLayout, endStr)
		if m, ok := byID[v.MemberID]; ok {
			m.Vacations = append(m.Vacations, v)
		}
	}
	return rows.Err()
}
