package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirapatk/clockwise/internal/db"
	"github.com/sirapatk/clockwise/internal/domain"
)

// SQLiteTimeEntryRepo implements TimeEntryRepo over a db.DBTX, so the
// same repository works standalone or tx-scoped.
type SQLiteTimeEntryRepo struct {
	db db.DBTX
}

// NewSQLiteTimeEntryRepo creates a new SQLiteTimeEntryRepo.
func NewSQLiteTimeEntryRepo(db db.DBTX) *SQLiteTimeEntryRepo {
	return &SQLiteTimeEntryRepo{db: db}
}

func (r *SQLiteTimeEntryRepo) Append(ctx context.Context, e *domain.TimeEntryEvent) error {
	query := `INSERT INTO time_entries (id, worker_id, action, work_mode, location, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.WorkerID,
		string(e.Action),
		e.WorkMode,
		nullableString(e.Location),
		e.Timestamp.UTC().Format(entryTimeLayout),
		e.CreatedAt.UTC().Format(auditTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) ListDay(ctx context.Context, workerID string, dayStart, dayEnd time.Time) ([]domain.TimeEntryEvent, error) {
	query := `SELECT id, worker_id, action, work_mode, location, timestamp, created_at
		FROM time_entries
		WHERE worker_id = ? AND timestamp >= ? AND timestamp <= ?
		ORDER BY timestamp`
	rows, err := r.db.QueryContext(ctx, query,
		workerID,
		dayStart.UTC().Format(entryTimeLayout),
		dayEnd.UTC().Format(entryTimeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("listing day entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimeEntryEvent
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTimeEntry(row rowScanner) (*domain.TimeEntryEvent, error) {
	var e domain.TimeEntryEvent
	var action, tsStr, createdAtStr string
	var location sql.NullString

	if err := row.Scan(&e.ID, &e.WorkerID, &action, &e.WorkMode, &location, &tsStr, &createdAtStr); err != nil {
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}

	e.Action = domain.EntryAction(action)
	e.Location = stringPtr(location)

	var parseErr error
	e.Timestamp, parseErr = time.Parse(entryTimeLayout, tsStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing timestamp: %w", parseErr)
	}
	e.CreatedAt, parseErr = time.Parse(auditTimeLayout, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &e, nil
}
