package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/martinhruska/scopeburn/internal/db"
	"github.com/martinhruska/scopeburn/internal/domain"
)

// SQLiteSettingsRepo stores the scope's calendar configuration as a singleton
// row. Get falls back to defaults when the scope was never configured.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(dbtx db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: dbtx}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (domain.ScopeSettings, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT include_holidays, country, subdivision FROM scope_settings WHERE id = 1`)

	var s domain.ScopeSettings
	var includeHolidays int
	if err := row.Scan(&includeHolidays, &s.Country, &s.Subdivision); err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultScopeSettings(), nil
		}
		return domain.ScopeSettings{}, fmt.Errorf("scanning scope settings: %w", err)
	}
	s.IncludeHolidays = includeHolidays != 0
	return s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s domain.ScopeSettings) error {
	query := `INSERT INTO scope_settings (id, include_holidays, country, subdivision, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET include_holidays = excluded.include_holidays,
			country = excluded.country, subdivision = excluded.subdivision, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		boolToInt(s.IncludeHolidays), s.Country, s.Subdivision, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting scope settings: %w", err)
	}
	return nil
}
