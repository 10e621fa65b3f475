package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirapatk/clockwise/internal/db"
	"github.com/sirapatk/clockwise/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo using a SQLite database.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

// NewSQLiteHolidayRepo creates a new SQLiteHolidayRepo.
func NewSQLiteHolidayRepo(db db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: db}
}

func (r *SQLiteHolidayRepo) Create(ctx context.Context, h *domain.Holiday) error {
	query := `INSERT INTO company_holidays (id, name, date, note, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Name,
		h.Date.UTC().Format(dateLayout),
		h.Note,
		h.CreatedAt.UTC().Format(auditTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting holiday: %w", err)
	}
	return nil
}

func (r *SQLiteHolidayRepo) List(ctx context.Context) ([]*domain.Holiday, error) {
	query := `SELECT id, name, date, note, created_at FROM company_holidays ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()
	return scanHolidays(rows)
}

func (r *SQLiteHolidayRepo) Upcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Holiday, error) {
	query := `SELECT id, name, date, note, created_at FROM company_holidays
		WHERE date >= ? ORDER BY date LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, from.UTC().Format(dateLayout), limit)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming holidays: %w", err)
	}
	defer rows.Close()
	return scanHolidays(rows)
}

func scanHolidays(rows *sql.Rows) ([]*domain.Holiday, error) {
	var holidays []*domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		var dateStr, createdAtStr string
		if err := rows.Scan(&h.ID, &h.Name, &dateStr, &h.Note, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning holiday: %w", err)
		}
		var parseErr error
		if h.Date, parseErr = time.Parse(dateLayout, dateStr); parseErr != nil {
			return nil, fmt.Errorf("parsing holiday date: %w", parseErr)
		}
		if h.CreatedAt, parseErr = time.Parse(auditTimeLayout, createdAtStr); parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		holidays = append(holidays, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return holidays, nil
}
