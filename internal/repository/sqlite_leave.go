package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirapatk/clockwise/internal/db"
	"github.com/sirapatk/clockwise/internal/domain"
)

// SQLiteLeaveRepo implements LeaveRepo using a SQLite database.
type SQLiteLeaveRepo struct {
	db db.DBTX
}

// NewSQLiteLeaveRepo creates a new SQLiteLeaveRepo.
func NewSQLiteLeaveRepo(db db.DBTX) *SQLiteLeaveRepo {
	return &SQLiteLeaveRepo{db: db}
}

func (r *SQLiteLeaveRepo) Create(ctx context.Context, l *domain.LeaveRequest) error {
	query := `INSERT INTO leave_requests (id, worker_id, leave_type, start_date, end_date, reason, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.WorkerID,
		string(l.Type),
		l.StartDate.UTC().Format(dateLayout),
		l.EndDate.UTC().Format(dateLayout),
		l.Reason,
		string(l.Status),
		l.CreatedAt.UTC().Format(auditTimeLayout),
		l.UpdatedAt.UTC().Format(auditTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting leave request: %w", err)
	}
	return nil
}

func (r *SQLiteLeaveRepo) GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	query := `SELECT id, worker_id, leave_type, start_date, end_date, reason, status, created_at, updated_at
		FROM leave_requests WHERE id = ?`
	l, err := scanLeave(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("leave request: %w", ErrNotFound)
		}
		return nil, err
	}
	return l, nil
}

func (r *SQLiteLeaveRepo) ListByWorker(ctx context.Context, workerID string) ([]*domain.LeaveRequest, error) {
	query := `SELECT id, worker_id, leave_type, start_date, end_date, reason, status, created_at, updated_at
		FROM leave_requests WHERE worker_id = ? ORDER BY start_date DESC`
	rows, err := r.db.QueryContext(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("listing leave requests: %w", err)
	}
	defer rows.Close()

	var requests []*domain.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leave requests: %w", err)
	}
	return requests, nil
}

func (r *SQLiteLeaveRepo) UpdateStatus(ctx context.Context, id string, status domain.LeaveStatus) error {
	query := `UPDATE leave_requests SET status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC().Format(auditTimeLayout), id)
	if err != nil {
		return fmt.Errorf("updating leave status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking leave update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("leave request: %w", ErrNotFound)
	}
	return nil
}

func scanLeave(row rowScanner) (*domain.LeaveRequest, error) {
	var l domain.LeaveRequest
	var leaveType, status, startStr, endStr, createdAtStr, updatedAtStr string

	err := row.Scan(&l.ID, &l.WorkerID, &leaveType, &startStr, &endStr, &l.Reason, &status, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning leave request: %w", err)
	}

	l.Type = domain.LeaveType(leaveType)
	l.Status = domain.LeaveStatus(status)

	var parseErr error
	if l.StartDate, parseErr = time.Parse(dateLayout, startStr); parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	if l.EndDate, parseErr = time.Parse(dateLayout, endStr); parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	if l.CreatedAt, parseErr = time.Parse(auditTimeLayout, createdAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if l.UpdatedAt, parseErr = time.Parse(auditTimeLayout, updatedAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &l, nil
}
