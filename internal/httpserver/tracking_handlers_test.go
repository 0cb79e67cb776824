package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vendorbuddy/backend/internal/models"
)

func TestOrderTracking(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, fmt.Sprintf("/order-tracking/%s", uuid.New()), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Order not found")

	order := &models.OrderTracking{
		Title:             "Rice bulk",
		Supplier:          "Acme Wholesale",
		Status:            "preparing",
		OrderDate:         "2025-07-20",
		EstimatedDelivery: "2025-07-26",
		SupplierPhone:     "555-0100",
		SupplierAddress:   "1 Warehouse Way",
		TotalAmount:       420,
		Items: []models.OrderItem{
			{Name: "Basmati Rice", Quantity: 4, Unit: "25kg bag", Price: 42.5},
			{Name: "Sunflower Oil", Quantity: 2, Unit: "5L can", Price: 18},
		},
	}
	require.NoError(t, env.Repo.CreateOrderTracking(context.Background(), order))

	rec = env.do(http.MethodGet, fmt.Sprintf("/order-tracking/%s", order.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.OrderTracking
	decodeBody(t, rec, &resp)
	require.Equal(t, "Rice bulk", resp.Title)
	require.Equal(t, "preparing", resp.Status)
	require.Len(t, resp.Items, 2)
}

func TestListSuppliers(t *testing.T) {
	env := newTestEnv(t)
	createSupplier(t, env, "Acme Wholesale")
	createSupplier(t, env, "Fresh Farms")

	rec := env.do(http.MethodGet, "/suppliers", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var suppliers []models.Supplier
	decodeBody(t, rec, &suppliers)
	require.Len(t, suppliers, 2)
}
