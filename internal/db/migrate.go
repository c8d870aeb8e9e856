package db

import (
	"database/sql"
	"fmt"
)

// migrations holds all schema statements in execution order. Statements are
// idempotent (IF NOT EXISTS) so Migrate can run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS templates (
		id              TEXT PRIMARY KEY,
		category        TEXT NOT NULL,
		subcategory     TEXT NOT NULL DEFAULT '',
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		duration_min    INTEGER NOT NULL,
		difficulty      INTEGER NOT NULL DEFAULT 1,
		archetype_fit   TEXT NOT NULL DEFAULT '{}',
		mode_fit        TEXT NOT NULL DEFAULT '{}',
		variation_group TEXT NOT NULL,
		time_of_day     TEXT NOT NULL DEFAULT 'any'
		                CHECK(time_of_day IN ('morning','afternoon','evening','any')),
		tags            TEXT NOT NULL DEFAULT '[]',
		active          INTEGER NOT NULL DEFAULT 1,
		created_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_templates_category
		ON templates(category, active)`,

	`CREATE TABLE IF NOT EXISTS rotation_entries (
		user_id         TEXT NOT NULL,
		variation_group TEXT NOT NULL,
		last_used_at    TEXT NOT NULL,
		use_count       INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (user_id, variation_group)
	)`,

	`CREATE TABLE IF NOT EXISTS feedback_records (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		template_id   TEXT,
		category      TEXT NOT NULL,
		status        TEXT NOT NULL
		              CHECK(status IN ('completed','partial','skipped')),
		satisfaction  INTEGER,
		planned_date  TEXT NOT NULL,
		completed_at  TEXT NOT NULL,
		mode          TEXT NOT NULL DEFAULT '',
		archetype     TEXT NOT NULL DEFAULT '',
		day_of_week   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_user_completed
		ON feedback_records(user_id, completed_at)`,

	`CREATE TABLE IF NOT EXISTS user_learning_state (
		user_id           TEXT PRIMARY KEY,
		tasks_seen        INTEGER NOT NULL DEFAULT 0,
		tasks_completed   INTEGER NOT NULL DEFAULT 0,
		first_activity_at TEXT,
		phase             TEXT NOT NULL DEFAULT 'discovery'
		                  CHECK(phase IN ('discovery','establishment','mastery'))
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
