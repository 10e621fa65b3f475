package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent;
// ALTER TABLE re-runs are tolerated so the list can only ever grow.
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
	// Append-only for the timeline core: no update or delete path
	// exists above the SQL layer.
	`CREATE TABLE IF NOT EXISTS time_entries (
		id         TEXT PRIMARY KEY,
		worker_id  TEXT NOT NULL,
		action     TEXT NOT NULL,
		work_mode  TEXT NOT NULL DEFAULT '',
		location   TEXT,
		timestamp  TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_entries_worker_ts ON time_entries(worker_id, timestamp)`,

	`CREATE TABLE IF NOT EXISTS leave_requests (
		id         TEXT PRIMARY KEY,
		worker_id  TEXT NOT NULL,
		leave_type TEXT NOT NULL
		           CHECK(leave_type IN ('vacation','sick','personal')),
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		reason     TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'pending'
		           CHECK(status IN ('pending','approved','rejected')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_leave_requests_worker ON leave_requests(worker_id)`,

	`CREATE TABLE IF NOT EXISTS company_holidays (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		date       TEXT NOT NULL,
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_company_holidays_date ON company_holidays(date)`,

	`CREATE TABLE IF NOT EXISTS worker_profiles (
		worker_id           TEXT PRIMARY KEY,
		display_name        TEXT NOT NULL DEFAULT '',
		email               TEXT NOT NULL DEFAULT '',
		email_notifications INTEGER NOT NULL DEFAULT 1,
		push_notifications  INTEGER NOT NULL DEFAULT 1,
		worktime_reminder   INTEGER NOT NULL DEFAULT 1,
		leave_status_update INTEGER NOT NULL DEFAULT 1,
		share_location      INTEGER NOT NULL DEFAULT 1,
		auto_checkout       INTEGER NOT NULL DEFAULT 0,
		break_reminder      INTEGER NOT NULL DEFAULT 0,
		updated_at          TEXT NOT NULL
	)`,
}
