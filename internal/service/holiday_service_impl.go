package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/sirapatk/clockwise/internal/repository"
)

type holidayService struct {
	holidays repository.HolidayRepo
}

func NewHolidayService(holidays repository.HolidayRepo) HolidayService {
	return &holidayService{holidays: holidays}
}

func (s *holidayService) Add(ctx context.Context, name string, date time.Time, note string) (*domain.Holiday, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("holiday name must not be empty")
	}

	h := &domain.Holiday{
		ID:        uuid.New().String(),
		Name:      name,
		Date:      date,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.holidays.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *holidayService) List(ctx context.Context) ([]*domain.Holiday, error) {
	return s.holidays.List(ctx)
}

func (s *holidayService) Upcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Holiday, error) {
	return s.holidays.Upcoming(ctx, from, limit)
}
