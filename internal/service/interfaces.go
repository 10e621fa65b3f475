package service

import (
	"context"
	"time"

	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/sirapatk/clockwise/internal/timeline"
)

// TimesheetService records worker actions and serves the derived daily
// timeline. Recording and fetching talk to the store; the derivation
// itself is the pure timeline package, so callers holding a day's
// events can also recompute locally with a fresh "now".
type TimesheetService interface {
	// Clock appends one action event and returns the persisted event.
	// On failure nothing is recorded and the caller's state must stay
	// unchanged.
	Clock(ctx context.Context, workerID string, action domain.EntryAction, workMode string, location *string) (*domain.TimeEntryEvent, error)
	// DayEvents returns the worker's events for the UTC day containing
	// day, ascending by timestamp.
	DayEvents(ctx context.Context, workerID string, day time.Time) ([]domain.TimeEntryEvent, error)
	// DayReport fetches today's events and aggregates them at now.
	DayReport(ctx context.Context, workerID string, now time.Time) (*timeline.DayReport, error)
	Status(ctx context.Context, workerID string, now time.Time) (domain.WorkStatus, error)
}

type LeaveService interface {
	Request(ctx context.Context, workerID string, leaveType domain.LeaveType, start, end time.Time, reason string) (*domain.LeaveRequest, error)
	ListByWorker(ctx context.Context, workerID string) ([]*domain.LeaveRequest, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}

type HolidayService interface {
	Add(ctx context.Context, name string, date time.Time, note string) (*domain.Holiday, error)
	List(ctx context.Context) ([]*domain.Holiday, error)
	Upcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Holiday, error)
}

type ProfileService interface {
	// Get returns the worker's profile, falling back to defaults for
	// a worker who never saved settings.
	Get(ctx context.Context, workerID string) (*domain.WorkerProfile, error)
	Update(ctx context.Context, p *domain.WorkerProfile) error
}
