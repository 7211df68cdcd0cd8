package service

import (
	"context"

	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/jmalmgren/tempus/internal/repository"
)

type availabilityService struct {
	availability repository.AvailabilityRepo
}

func NewAvailabilityService(availability repository.AvailabilityRepo) AvailabilityService {
	return &availabilityService{availability: availability}
}

func (s *availabilityService) Get(ctx context.Context) (*domain.Availability, error) {
	return s.availability.Get(ctx)
}

func (s *availabilityService) Set(ctx context.Context, a *domain.Availability) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return s.availability.Upsert(ctx, a)
}
