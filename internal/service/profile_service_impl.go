package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/sirapatk/clockwise/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context, workerID string) (*domain.WorkerProfile, error) {
	p, err := s.profiles.Get(ctx, workerID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultProfile(workerID), nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, p *domain.WorkerProfile) error {
	p.UpdatedAt = time.Now().UTC()
	return s.profiles.Upsert(ctx, p)
}
