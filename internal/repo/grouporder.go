package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendorbuddy/backend/internal/models"
	"github.com/vendorbuddy/backend/internal/transport"
)

func (r *GormRepo) CreateGroupOrder(ctx context.Context, order *models.GroupOrder) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) GetGroupOrder(ctx context.Context, id uuid.UUID) (*models.GroupOrder, error) {
	var order models.GroupOrder
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListGroupOrders(ctx context.Context) ([]models.GroupOrder, error) {
	orders := make([]models.GroupOrder, 0)
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListActiveGroupOrders(ctx context.Context) ([]transport.ActiveGroupOrder, error) {
	rows := make([]transport.ActiveGroupOrder, 0)
	err := r.DB.WithContext(ctx).
		Model(&models.GroupOrder{}).
		Select("group_orders.id, group_orders.title, suppliers.name AS supplier, group_orders.total_items, group_orders.current_members, group_orders.max_members, group_orders.deadline, group_orders.savings").
		Joins("JOIN suppliers ON suppliers.id = group_orders.supplier_id").
		Order("group_orders.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) ListGroupOrderRequests(ctx context.Context) ([]models.GroupOrderRequest, error) {
	requests := make([]models.GroupOrderRequest, 0)
	err := r.DB.WithContext(ctx).
		Preload("Supplier").
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *GormRepo) CreateGroupOrderRequest(ctx context.Context, req *models.GroupOrderRequest) error {
	return r.DB.WithContext(ctx).Create(req).Error
}

// JoinGroupOrder claims one member slot with a single conditional UPDATE.
// The capacity check and the increment commit together, so two concurrent
// joins can never both take the last slot. RowsAffected == 0 means either
// the order does not exist or it is full; a follow-up read disambiguates.
func (r *GormRepo) JoinGroupOrder(ctx context.Context, id uuid.UUID) (*models.GroupOrder, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.GroupOrder{}).
		Where("id = ? AND current_members < max_members", id).
		Update("current_members", gorm.Expr("current_members + 1"))
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		var order models.GroupOrder
		if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, gorm.ErrRecordNotFound
			}
			return nil, err
		}
		return nil, ErrGroupFull
	}

	var order models.GroupOrder
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
