package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
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
	`CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS level_performance_records (
		id              TEXT PRIMARY KEY,
		module_id       TEXT NOT NULL,
		level_number    INTEGER NOT NULL CHECK(level_number BETWEEN 1 AND 20),
		correct_count   INTEGER NOT NULL,
		total_questions INTEGER NOT NULL,
		accuracy        REAL NOT NULL,
		passed          INTEGER NOT NULL CHECK(passed IN (0,1)),
		error_counts    TEXT NOT NULL DEFAULT '{}',
		completed_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_perf_module_level ON level_performance_records(module_id, level_number)`,
	`CREATE INDEX IF NOT EXISTS idx_perf_completed ON level_performance_records(completed_at)`,

	// Reattempt tracking was added after the first release.
	`ALTER TABLE level_performance_records ADD COLUMN reattempt_count INTEGER NOT NULL DEFAULT 0`,
}
