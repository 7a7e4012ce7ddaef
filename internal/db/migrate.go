package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// re-runs tolerate "duplicate column name" so the list can only grow.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL UNIQUE,
		total_headcount REAL NOT NULL DEFAULT 0,
		busy_headcount  REAL NOT NULL DEFAULT 0,
		tier_hours      TEXT NOT NULL DEFAULT '{}',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		short_id    TEXT UNIQUE,
		name        TEXT NOT NULL,
		priority    INTEGER NOT NULL DEFAULT 100,
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','paused','done','archived')),
		start_hint  TEXT,
		target_date TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS assignments (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		team_id        TEXT NOT NULL REFERENCES teams(id),
		phase          TEXT NOT NULL,
		phase_order    INTEGER NOT NULL DEFAULT 0,
		tier           INTEGER NOT NULL DEFAULT 0,
		headcount      REAL NOT NULL DEFAULT 1,
		hours_override REAL NOT NULL DEFAULT 0,
		estimate_hours REAL NOT NULL DEFAULT 0,
		ready_date     TEXT,
		start_date     TEXT,
		end_date       TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_project ON assignments(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_team ON assignments(team_id)`,
	`CREATE TABLE IF NOT EXISTS saved_plans (
		id          TEXT PRIMARY KEY,
		label       TEXT NOT NULL UNIQUE,
		fingerprint TEXT NOT NULL,
		payload     TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,
}
