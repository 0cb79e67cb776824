package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vendorbuddy/backend/internal/logging"
	"github.com/vendorbuddy/backend/internal/middleware"
	"github.com/vendorbuddy/backend/internal/service"
)

type DashboardHTTP struct {
	Svc *service.DashboardService
}

func (h *DashboardHTTP) Vendor(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.vendor")

	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	data, err := h.Svc.Vendor(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("vendor_dashboard_error", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("vendor_dashboard_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch dashboard data")
	}

	return c.JSON(http.StatusOK, data)
}

func (h *DashboardHTTP) Supplier(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.supplier")

	data, err := h.Svc.Supplier(ctx)
	if err != nil {
		l.Error("supplier_dashboard_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch supplier dashboard data")
	}

	return c.JSON(http.StatusOK, data)
}
