package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sirapatk/clockwise/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// TimeEntryRepo is the event store boundary for the timeline core.
// The store is append-only: nothing above the SQL layer updates or
// deletes a recorded event.
type TimeEntryRepo interface {
	Append(ctx context.Context, e *domain.TimeEntryEvent) error
	// ListDay returns one worker's events inside [dayStart, dayEnd],
	// ascending by timestamp.
	ListDay(ctx context.Context, workerID string, dayStart, dayEnd time.Time) ([]domain.TimeEntryEvent, error)
}

type LeaveRepo interface {
	Create(ctx context.Context, l *domain.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	ListByWorker(ctx context.Context, workerID string) ([]*domain.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.LeaveStatus) error
}

type HolidayRepo interface {
	Create(ctx context.Context, h *domain.Holiday) error
	List(ctx context.Context) ([]*domain.Holiday, error)
	Upcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Holiday, error)
}

type ProfileRepo interface {
	Get(ctx context.Context, workerID string) (*domain.WorkerProfile, error)
	Upsert(ctx context.Context, p *domain.WorkerProfile) error
}
