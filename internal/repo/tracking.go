package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/vendorbuddy/backend/internal/models"
)

func (r *GormRepo) GetOrderTracking(ctx context.Context, id uuid.UUID) (*models.OrderTracking, error) {
	var order models.OrderTracking
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) CreateOrderTracking(ctx context.Context, order *models.OrderTracking) error {
	return r.DB.WithContext(ctx).Create(order).Error
}
