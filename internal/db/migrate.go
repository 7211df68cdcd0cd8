package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		description     TEXT NOT NULL,
		category_id     TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		start_date      TEXT NOT NULL,
		deadline        TEXT NOT NULL,
		estimated_hours INTEGER NOT NULL DEFAULT 0 CHECK(estimated_hours >= 0),
		actual_hours    INTEGER NOT NULL DEFAULT 0 CHECK(actual_hours >= 0),
		status          TEXT NOT NULL DEFAULT 'not_started'
		                CHECK(status IN ('not_started','ongoing','completed')),
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_category ON tasks(category_id)`,

	// Exactly one availability row per database; the CHECK pins the id so a
	// second profile cannot be inserted.
	`CREATE TABLE IF NOT EXISTS availability (
		id         INTEGER PRIMARY KEY CHECK(id = 1),
		monday     INTEGER NOT NULL CHECK(monday    BETWEEN 0 AND 24),
		tuesday    INTEGER NOT NULL CHECK(tuesday   BETWEEN 0 AND 24),
		wednesday  INTEGER NOT NULL CHECK(wednesday BETWEEN 0 AND 24),
		thursday   INTEGER NOT NULL CHECK(thursday  BETWEEN 0 AND 24),
		friday     INTEGER NOT NULL CHECK(friday    BETWEEN 0 AND 24),
		saturday   INTEGER NOT NULL CHECK(saturday  BETWEEN 0 AND 24),
		sunday     INTEGER NOT NULL CHECK(sunday    BETWEEN 0 AND 24),
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs on every open.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
