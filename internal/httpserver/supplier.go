package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vendorbuddy/backend/internal/logging"
	"github.com/vendorbuddy/backend/internal/service"
)

type SupplierHTTP struct {
	Svc *service.SupplierService
}

func (h *SupplierHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplier.list")

	suppliers, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_suppliers_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch suppliers")
	}

	return c.JSON(http.StatusOK, suppliers)
}
