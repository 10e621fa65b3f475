package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirapatk/clockwise/internal/db"
	"github.com/sirapatk/clockwise/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(db db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: db}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, workerID string) (*domain.WorkerProfile, error) {
	query := `SELECT worker_id, display_name, email, email_notifications, push_notifications,
		worktime_reminder, leave_status_update, share_location, auto_checkout, break_reminder, updated_at
		FROM worker_profiles WHERE worker_id = ?`
	row := r.db.QueryRowContext(ctx, query, workerID)

	var p domain.WorkerProfile
	var emailNotif, pushNotif, reminder, leaveUpd, shareLoc, autoOut, breakRem int
	var updatedAtStr string

	err := row.Scan(&p.WorkerID, &p.DisplayName, &p.Email, &emailNotif, &pushNotif,
		&reminder, &leaveUpd, &shareLoc, &autoOut, &breakRem, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("worker profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning worker profile: %w", err)
	}

	p.EmailNotifications = intToBool(emailNotif)
	p.PushNotifications = intToBool(pushNotif)
	p.WorktimeReminder = intToBool(reminder)
	p.LeaveStatusUpdate = intToBool(leaveUpd)
	p.ShareLocation = intToBool(shareLoc)
	p.AutoCheckout = intToBool(autoOut)
	p.BreakReminder = intToBool(breakRem)

	if p.UpdatedAt, err = time.Parse(auditTimeLayout, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.WorkerProfile) error {
	query := `INSERT INTO worker_profiles (worker_id, display_name, email, email_notifications, push_notifications,
			worktime_reminder, leave_status_update, share_location, auto_checkout, break_reminder, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(worker_id) DO UPDATE SET
			display_name = excluded.display_name,
			email = excluded.email,
			email_notifications = excluded.email_notifications,
			push_notifications = excluded.push_notifications,
			worktime_reminder = excluded.worktime_reminder,
			leave_status_update = excluded.leave_status_update,
			share_location = excluded.share_location,
			auto_checkout = excluded.auto_checkout,
			break_reminder = excluded.break_reminder,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.WorkerID,
		p.DisplayName,
		p.Email,
		boolToInt(p.EmailNotifications),
		boolToInt(p.PushNotifications),
		boolToInt(p.WorktimeReminder),
		boolToInt(p.LeaveStatusUpdate),
		boolToInt(p.ShareLocation),
		boolToInt(p.AutoCheckout),
		boolToInt(p.BreakReminder),
		p.UpdatedAt.UTC().Format(auditTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("upserting worker profile: %w", err)
	}
	return nil
}
