package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendorbuddy/backend/internal/models"
	"github.com/vendorbuddy/backend/internal/repo"
)

type TrackingService struct {
	Repo *repo.GormRepo
}

func (s *TrackingService) Get(ctx context.Context, id uuid.UUID) (*models.OrderTracking, error) {
	order, err := s.Repo.GetOrderTracking(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}
