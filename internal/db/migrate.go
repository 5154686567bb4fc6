package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies all schema statements. Statements are idempotent (CREATE IF
// NOT EXISTS) and the whole list re-runs on every open; ALTER TABLE additions
// tolerate "duplicate column name" for the same reason.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		priority   INTEGER NOT NULL DEFAULT 100,
		status     TEXT NOT NULL DEFAULT 'not_started'
		           CHECK(status IN ('not_started','in_progress','paused',
		                            'completed','cancelled','archived','suspended')),
		deadline   TEXT,
		start_day  TEXT,
		started_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS project_roles (
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		role            TEXT NOT NULL,
		planned_mandays REAL NOT NULL DEFAULT 0,
		done_value      REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, role)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_project_roles_project ON project_roles(project_id)`,

	`CREATE TABLE IF NOT EXISTS team_members (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL,
		fte        REAL NOT NULL DEFAULT 1.0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS vacations (
		id         TEXT PRIMARY KEY,
		member_id  TEXT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		note       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_vacations_member ON vacations(member_id)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		member_id      TEXT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
		role           TEXT NOT NULL,
		allocation_fte REAL NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		PRIMARY KEY (project_id, member_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignments_project ON assignments(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_member ON assignments(member_id)`,

	`CREATE TABLE IF NOT EXISTS workflows (
		project_id    TEXT PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
		parallel_mode INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS workflow_deps (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		from_role  TEXT NOT NULL,
		to_role    TEXT NOT NULL,
		PRIMARY KEY (project_id, from_role, to_role)
	)`,

	`CREATE TABLE IF NOT EXISTS workflow_statuses (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		role       TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'active'
		           CHECK(status IN ('active','waiting','blocked')),
		PRIMARY KEY (project_id, role)
	)`,

	// Singleton row: one calendar configuration per scope database.
	`CREATE TABLE IF NOT EXISTS scope_settings (
		id               INTEGER PRIMARY KEY CHECK (id = 1),
		include_holidays INTEGER NOT NULL DEFAULT 1,
		country          TEXT NOT NULL DEFAULT '',
		subdivision      TEXT NOT NULL DEFAULT '',
		updated_at       TEXT NOT NULL
	)`,
}
