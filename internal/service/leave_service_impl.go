package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirapatk/clockwise/internal/db"
	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/sirapatk/clockwise/internal/repository"
)

type leaveService struct {
	leaves repository.LeaveRepo
	uow    db.UnitOfWork
}

func NewLeaveService(leaves repository.LeaveRepo, uow db.UnitOfWork) LeaveService {
	return &leaveService{leaves: leaves, uow: uow}
}

func (s *leaveService) Request(ctx context.Context, workerID string, leaveType domain.LeaveType, start, end time.Time, reason string) (*domain.LeaveRequest, error) {
	if !domain.ValidLeaveTypes[string(leaveType)] {
		return nil, fmt.Errorf("unknown leave type %q", leaveType)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("leave end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	now := time.Now().UTC()
	l := &domain.LeaveRequest{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		Type:      leaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		Status:    domain.LeavePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.leaves.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *leaveService) ListByWorker(ctx context.Context, workerID string) ([]*domain.LeaveRequest, error) {
	return s.leaves.ListByWorker(ctx, workerID)
}

func (s *leaveService) Approve(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.LeaveApproved)
}

func (s *leaveService) Reject(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.LeaveRejected)
}

// transition moves a pending request to a decided state. Read and
// update share one transaction so two racing decisions cannot both
// pass the pending check.
func (s *leaveService) transition(ctx context.Context, id string, status domain.LeaveStatus) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txLeaves := repository.NewSQLiteLeaveRepo(tx)

		l, err := txLeaves.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if l.Status != domain.LeavePending {
			return fmt.Errorf("%w (currently %s)", ErrLeaveNotPending, l.Status)
		}
		return txLeaves.UpdateStatus(ctx, id, status)
	})
}
