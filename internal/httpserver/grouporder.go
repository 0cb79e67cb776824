package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vendorbuddy/backend/internal/logging"
	"github.com/vendorbuddy/backend/internal/service"
	"github.com/vendorbuddy/backend/internal/transport"
)

type GroupOrderHTTP struct {
	Svc *service.GroupOrderService
}

func (h *GroupOrderHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "grouporder.create")

	var req transport.CreateGroupOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_group_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_group_order_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_group_order_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create group order")
	}

	l.Info("create_group_order_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, order)
}

func (h *GroupOrderHTTP) ListActive(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "grouporder.list_active")

	orders, err := h.Svc.ListActive(ctx)
	if err != nil {
		l.Error("list_active_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch active group orders")
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *GroupOrderHTTP) ListRequests(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "grouporder.list_requests")

	requests, err := h.Svc.ListRequests(ctx)
	if err != nil {
		l.Error("list_requests_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch group orders")
	}

	return c.JSON(http.StatusOK, requests)
}

func (h *GroupOrderHTTP) Join(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "grouporder.join")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("join_error", "status", 400, "reason", "id not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id not a uuid")
	}

	order, err := h.Svc.Join(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("join_error", "status", 404, "reason", "group order not found")
			return echo.NewHTTPError(http.StatusNotFound, "Group order not found")
		}
		if errors.Is(err, service.ErrGroupFull) {
			l.Warn("join_error", "status", 400, "reason", "group is already full")
			return echo.NewHTTPError(http.StatusBadRequest, "Group is already full")
		}
		l.Error("join_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	l.Info("join_success", "order_id", order.ID, "current_members", order.CurrentMembers)
	return c.JSON(http.StatusOK, order)
}
