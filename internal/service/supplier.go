package service

import (
	"context"

	"github.com/vendorbuddy/backend/internal/models"
	"github.com/vendorbuddy/backend/internal/repo"
)

type SupplierService struct {
	Repo *repo.GormRepo
}

func (s *SupplierService) List(ctx context.Context) ([]models.Supplier, error) {
	return s.Repo.ListSuppliers(ctx)
}
