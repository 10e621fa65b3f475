package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirapatk/clockwise/internal/domain"
)

// Time entry options
type EntryOption func(*domain.TimeEntryEvent)

func WithWorkMode(mode string) EntryOption {
	return func(e *domain.TimeEntryEvent) {
		e.WorkMode = mode
	}
}

func WithLocation(loc string) EntryOption {
	return func(e *domain.TimeEntryEvent) {
		e.Location = &loc
	}
}

func NewTestEntry(workerID string, action domain.EntryAction, ts time.Time, opts ...EntryOption) *domain.TimeEntryEvent {
	e := &domain.TimeEntryEvent{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		Action:    action,
		WorkMode:  domain.ModeOffice,
		Timestamp: ts,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Leave request options
type LeaveOption func(*domain.LeaveRequest)

func WithLeaveType(t domain.LeaveType) LeaveOption {
	return func(l *domain.LeaveRequest) {
		l.Type = t
	}
}

func WithLeaveStatus(s domain.LeaveStatus) LeaveOption {
	return func(l *domain.LeaveRequest) {
		l.Status = s
	}
}

func WithLeaveRange(start, end time.Time) LeaveOption {
	return func(l *domain.LeaveRequest) {
		l.StartDate = start
		l.EndDate = end
	}
}

func NewTestLeave(workerID string, opts ...LeaveOption) *domain.LeaveRequest {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	l := &domain.LeaveRequest{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		Type:      domain.LeaveVacation,
		StartDate: day.AddDate(0, 0, 7),
		EndDate:   day.AddDate(0, 0, 8),
		Reason:    "trip",
		Status:    domain.LeavePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func NewTestHoliday(name string, date time.Time) *domain.Holiday {
	return &domain.Holiday{
		ID:        uuid.New().String(),
		Name:      name,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}
