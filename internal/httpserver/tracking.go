package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vendorbuddy/backend/internal/logging"
	"github.com/vendorbuddy/backend/internal/service"
)

type TrackingHTTP struct {
	Svc *service.TrackingService
}

func (h *TrackingHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tracking.get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("tracking_error", "status", 400, "reason", "id not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id not a uuid")
	}

	order, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("tracking_error", "status", 404, "reason", "order not found")
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		}
		l.Error("tracking_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, order)
}
