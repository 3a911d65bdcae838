package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '',
		deadline   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS study_tasks (
		id            TEXT PRIMARY KEY,
		subject_id    TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		description   TEXT NOT NULL,
		unit          TEXT NOT NULL
		              CHECK(unit IN ('pages','exercises','video_min')),
		amount        INTEGER NOT NULL CHECK(amount > 0),
		estimated_min INTEGER NOT NULL CHECK(estimated_min > 0),
		completed     INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_study_tasks_subject ON study_tasks(subject_id)`,

	`CREATE TABLE IF NOT EXISTS planned_sessions (
		id             TEXT PRIMARY KEY,
		subject_id     TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		task_id        TEXT NOT NULL REFERENCES study_tasks(id) ON DELETE CASCADE,
		date           TEXT NOT NULL,
		hour           INTEGER,
		planned_min    INTEGER NOT NULL CHECK(planned_min > 0),
		planned_amount INTEGER NOT NULL DEFAULT 0,
		completed      INTEGER NOT NULL DEFAULT 0,
		actual_min     INTEGER,
		actual_amount  INTEGER,
		rating         INTEGER,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_planned_sessions_subject ON planned_sessions(subject_id)`,
	`CREATE INDEX IF NOT EXISTS idx_planned_sessions_task ON planned_sessions(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_planned_sessions_date ON planned_sessions(date)`,

	// Single-row settings table; the fixed id keeps upserts trivial.
	`CREATE TABLE IF NOT EXISTS settings (
		id                 INTEGER PRIMARY KEY CHECK(id = 1),
		daily_capacity_min INTEGER NOT NULL CHECK(daily_capacity_min > 0),
		blocked_weekdays   TEXT NOT NULL DEFAULT '',
		updated_at         TEXT NOT NULL
	)`,
}
