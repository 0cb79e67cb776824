package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendorbuddy/backend/internal/logging"
	"github.com/vendorbuddy/backend/internal/models"
	"github.com/vendorbuddy/backend/internal/mykafka"
	"github.com/vendorbuddy/backend/internal/repo"
	"github.com/vendorbuddy/backend/internal/transport"
)

type GroupOrderService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

func (s *GroupOrderService) Create(ctx context.Context, req transport.CreateGroupOrderRequest) (*models.GroupOrder, error) {
	l := logging.FromContext(ctx).With("svc", "grouporder.create")

	if req.Title == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}
	if req.TotalItems < 0 {
		return nil, fmt.Errorf("%w: totalItems must be >= 0", ErrValidation)
	}
	if req.MaxMembers <= 0 {
		return nil, fmt.Errorf("%w: maxMembers must be > 0", ErrValidation)
	}
	if req.SupplierID == uuid.Nil {
		return nil, fmt.Errorf("%w: supplierId required", ErrValidation)
	}

	exists, err := s.Repo.SupplierExists(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: supplier %s does not exist", ErrValidation, req.SupplierID)
	}

	order := models.GroupOrder{
		Title:          req.Title,
		TotalItems:     req.TotalItems,
		CurrentMembers: 0,
		MaxMembers:     req.MaxMembers,
		Deadline:       req.Deadline,
		Savings:        req.Savings,
		SupplierID:     req.SupplierID,
	}

	if err := s.Repo.CreateGroupOrder(ctx, &order); err != nil {
		return nil, err
	}

	event := map[string]interface{}{
		"type":       "group_order_created",
		"orderID":    order.ID,
		"title":      order.Title,
		"maxMembers": order.MaxMembers,
	}
	if err := s.Producer.PublishEvent(ctx, mykafka.TopicOrderEvents, order.ID.String(), event); err != nil {
		l.Warn("kafka_publish_error", "error", err)
	}

	return &order, nil
}

func (s *GroupOrderService) ListActive(ctx context.Context) ([]transport.ActiveGroupOrder, error) {
	return s.Repo.ListActiveGroupOrders(ctx)
}

func (s *GroupOrderService) ListRequests(ctx context.Context) ([]models.GroupOrderRequest, error) {
	return s.Repo.ListGroupOrderRequests(ctx)
}

// Join claims one slot on the order. The capacity invariant lives in the
// repo's conditional update; this layer only translates its outcomes.
func (s *GroupOrderService) Join(ctx context.Context, id uuid.UUID) (*models.GroupOrder, error) {
	l := logging.FromContext(ctx).With("svc", "grouporder.join")

	order, err := s.Repo.JoinGroupOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, repo.ErrGroupFull) {
			return nil, ErrGroupFull
		}
		return nil, err
	}

	event := map[string]interface{}{
		"type":           "group_order_joined",
		"orderID":        order.ID,
		"currentMembers": order.CurrentMembers,
		"maxMembers":     order.MaxMembers,
	}
	if err := s.Producer.PublishEvent(ctx, mykafka.TopicOrderEvents, order.ID.String(), event); err != nil {
		l.Warn("kafka_publish_error", "error", err)
	}

	return order, nil
}
