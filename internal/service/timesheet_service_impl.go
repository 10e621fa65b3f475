package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirapatk/clockwise/internal/db"
	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/sirapatk/clockwise/internal/repository"
	"github.com/sirapatk/clockwise/internal/timeline"
)

type timesheetService struct {
	entries repository.TimeEntryRepo
	uow     db.UnitOfWork
}

func NewTimesheetService(entries repository.TimeEntryRepo, uow db.UnitOfWork) TimesheetService {
	return &timesheetService{entries: entries, uow: uow}
}

func (s *timesheetService) Clock(ctx context.Context, workerID string, action domain.EntryAction, workMode string, location *string) (*domain.TimeEntryEvent, error) {
	now := time.Now().UTC()
	e := &domain.TimeEntryEvent{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		Action:    action,
		WorkMode:  workMode,
		Location:  location,
		Timestamp: now,
		CreatedAt: now,
	}

	// One event per transaction: the append either lands whole or the
	// caller is told it did not land at all.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteTimeEntryRepo(tx).Append(ctx, e)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return e, nil
}

func (s *timesheetService) DayEvents(ctx context.Context, workerID string, day time.Time) ([]domain.TimeEntryEvent, error) {
	start, end := timeline.DayWindow(day)
	events, err := s.entries.ListDay(ctx, workerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return events, nil
}

func (s *timesheetService) DayReport(ctx context.Context, workerID string, now time.Time) (*timeline.DayReport, error) {
	events, err := s.DayEvents(ctx, workerID, now)
	if err != nil {
		return nil, err
	}
	report := timeline.BuildDayReport(events, now)
	return &report, nil
}

func (s *timesheetService) Status(ctx context.Context, workerID string, now time.Time) (domain.WorkStatus, error) {
	events, err := s.DayEvents(ctx, workerID, now)
	if err != nil {
		return domain.StatusOffline, err
	}
	return timeline.CurrentStatus(events), nil
}
