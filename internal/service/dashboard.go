package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendorbuddy/backend/internal/models"
	"github.com/vendorbuddy/backend/internal/repo"
)

type DashboardService struct {
	Repo *repo.GormRepo
}

type VendorDashboard struct {
	GroupOrders    []models.GroupOrder `json:"groupOrders"`
	Suppliers      []models.Supplier   `json:"suppliers"`
	SavedThisMonth float64             `json:"savedThisMonth"`
}

type SupplierDashboard struct {
	Products           []models.Product           `json:"products"`
	GroupOrderRequests []models.GroupOrderRequest `json:"groupOrderRequests"`
	TotalSavings       float64                    `json:"totalSavings"`
	VendorCount        int64                      `json:"vendorCount"`
}

func (s *DashboardService) Vendor(ctx context.Context, userID uuid.UUID) (*VendorDashboard, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	orders, err := s.Repo.ListGroupOrders(ctx)
	if err != nil {
		return nil, err
	}

	suppliers, err := s.Repo.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	return &VendorDashboard{
		GroupOrders:    orders,
		Suppliers:      suppliers,
		SavedThisMonth: user.SavedThisMonth,
	}, nil
}

func (s *DashboardService) Supplier(ctx context.Context) (*SupplierDashboard, error) {
	products, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.Repo.ListGroupOrderRequests(ctx)
	if err != nil {
		return nil, err
	}

	totalSavings, err := s.Repo.SumSavedThisMonth(ctx)
	if err != nil {
		return nil, err
	}

	vendorCount, err := s.Repo.CountVendors(ctx)
	if err != nil {
		return nil, err
	}

	return &SupplierDashboard{
		Products:           products,
		GroupOrderRequests: requests,
		TotalSavings:       totalSavings,
		VendorCount:        vendorCount,
	}, nil
}
