package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendorbuddy/backend/internal/es"
	"github.com/vendorbuddy/backend/internal/logging"
	"github.com/vendorbuddy/backend/internal/models"
	"github.com/vendorbuddy/backend/internal/mykafka"
	"github.com/vendorbuddy/backend/internal/repo"
	"github.com/vendorbuddy/backend/internal/transport"
)

type ProductService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
}

func validStatus(status string) bool {
	switch status {
	case models.ProductAvailable, models.ProductLowStock, models.ProductOutOfStock:
		return true
	}
	return false
}

// Add creates a product for the supplier linked to the given user. The
// request carries a user id under supplierId, matching what the signup flow
// hands to the frontend.
func (s *ProductService) Add(ctx context.Context, req transport.AddProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.add")

	if req.Name == "" || req.Category == "" || req.Unit == "" || req.Status == "" || req.SupplierID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if !validStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}

	user, err := s.Repo.GetUserByID(ctx, req.SupplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotSupplier
		}
		return nil, err
	}
	if user.SupplierID == nil {
		return nil, ErrNotSupplier
	}

	product := models.Product{
		Name:       req.Name,
		Category:   req.Category,
		Price:      req.Price,
		Unit:       req.Unit,
		Stock:      req.Stock,
		Status:     req.Status,
		SupplierID: *user.SupplierID,
	}

	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}

	if s.ES != nil {
		if err := es.IndexProduct(ctx, s.ES, es.ProductIndex, &product); err != nil {
			l.Warn("es_index_error", "error", err)
		}
	}

	event := map[string]interface{}{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	}
	if err := s.Producer.PublishEvent(ctx, mykafka.TopicProductEvents, product.ID.String(), event); err != nil {
		l.Warn("kafka_publish_error", "error", err)
	}

	return &product, nil
}

func (s *ProductService) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]models.Product, error) {
	exists, err := s.Repo.SupplierExists(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.Repo.ListProductsBySupplier(ctx, supplierID)
}

func (s *ProductService) Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	if query == "" {
		return 0, nil, fmt.Errorf("%w: query required", ErrValidation)
	}
	if s.ES == nil {
		return 0, nil, errors.New("search is not configured")
	}
	return es.SearchProducts(ctx, s.ES, es.ProductIndex, query, from, size)
}
