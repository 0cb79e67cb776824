package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/vendorbuddy/backend/internal/models"
)

func (r *GormRepo) CreateSupplier(ctx context.Context, s *models.Supplier) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *GormRepo) GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *GormRepo) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers := make([]models.Supplier, 0)
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *GormRepo) SupplierExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.Supplier{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
