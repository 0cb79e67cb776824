package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vendorbuddy/backend/internal/models"
	"github.com/vendorbuddy/backend/internal/mykafka"
	"github.com/vendorbuddy/backend/internal/repo"
	"github.com/vendorbuddy/backend/internal/transport"
)

func newTestGroupOrderService(t *testing.T) (*GroupOrderService, *repo.GormRepo) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Supplier{}, &models.GroupOrder{}, &models.GroupOrderRequest{}))

	gormRepo := &repo.GormRepo{DB: db}
	return &GroupOrderService{Repo: gormRepo, Producer: &mykafka.Producer{}}, gormRepo
}

func TestGroupOrderCreate_Validation(t *testing.T) {
	svc, gormRepo := newTestGroupOrderService(t)
	ctx := context.Background()

	supplier := &models.Supplier{Name: "Acme", Specialties: []string{}}
	require.NoError(t, gormRepo.DB.Create(supplier).Error)

	tests := []struct {
		name string
		req  transport.CreateGroupOrderRequest
	}{
		{name: "empty title", req: transport.CreateGroupOrderRequest{MaxMembers: 3, SupplierID: supplier.ID}},
		{name: "negative totalItems", req: transport.CreateGroupOrderRequest{Title: "x", TotalItems: -5, MaxMembers: 3, SupplierID: supplier.ID}},
		{name: "zero maxMembers", req: transport.CreateGroupOrderRequest{Title: "x", SupplierID: supplier.ID}},
		{name: "negative maxMembers", req: transport.CreateGroupOrderRequest{Title: "x", MaxMembers: -1, SupplierID: supplier.ID}},
		{name: "nil supplier", req: transport.CreateGroupOrderRequest{Title: "x", MaxMembers: 3}},
		{name: "unknown supplier", req: transport.CreateGroupOrderRequest{Title: "x", MaxMembers: 3, SupplierID: uuid.New()}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			order, err := svc.Create(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestGroupOrderCreate_StartsEmpty(t *testing.T) {
	svc, gormRepo := newTestGroupOrderService(t)
	ctx := context.Background()

	supplier := &models.Supplier{Name: "Acme", Specialties: []string{}}
	require.NoError(t, gormRepo.DB.Create(supplier).Error)

	order, err := svc.Create(ctx, transport.CreateGroupOrderRequest{
		Title:      "Rice bulk",
		TotalItems: 40,
		MaxMembers: 5,
		Deadline:   "2025-07-26",
		Savings:    "15%",
		SupplierID: supplier.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, order.CurrentMembers)
	assert.Equal(t, 5, order.MaxMembers)
	assert.NotEqual(t, uuid.Nil, order.ID)
}

func TestGroupOrderJoin_MapsErrors(t *testing.T) {
	svc, gormRepo := newTestGroupOrderService(t)
	ctx := context.Background()

	_, err := svc.Join(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	supplier := &models.Supplier{Name: "Acme", Specialties: []string{}}
	require.NoError(t, gormRepo.DB.Create(supplier).Error)

	order := &models.GroupOrder{Title: "Rice bulk", MaxMembers: 1, SupplierID: supplier.ID}
	require.NoError(t, gormRepo.DB.Create(order).Error)

	joined, err := svc.Join(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, joined.CurrentMembers)

	_, err = svc.Join(ctx, order.ID)
	assert.ErrorIs(t, err, ErrGroupFull)
}
