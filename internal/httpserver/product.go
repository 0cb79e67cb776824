package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vendorbuddy/backend/internal/logging"
	"github.com/vendorbuddy/backend/internal/service"
	"github.com/vendorbuddy/backend/internal/transport"
	"github.com/vendorbuddy/backend/internal/util"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) Add(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.add")

	var req transport.AddProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.Add(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_product_error", "status", 400, "reason", "missing required fields", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
		}
		if errors.Is(err, service.ErrNotSupplier) {
			l.Warn("add_product_error", "status", 400, "reason", "user is not a supplier")
			return echo.NewHTTPError(http.StatusBadRequest, "User is not a supplier")
		}
		l.Error("add_product_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add product")
	}

	l.Info("add_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Product added successfully",
		"product": product,
	})
}

func (h *ProductHTTP) ListBySupplier(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list_by_supplier")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("list_products_error", "status", 400, "reason", "id not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id not a uuid")
	}

	products, err := h.Svc.ListBySupplier(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("list_products_error", "status", 404, "reason", "supplier not found")
			return echo.NewHTTPError(http.StatusNotFound, "Supplier not found")
		}
		l.Error("list_products_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"products": products,
	})
}

func (h *ProductHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	query := c.QueryParam("q")
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.Search(ctx, query, offset, limit)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("search_error", "status", 400, "reason", "query required")
			return echo.NewHTTPError(http.StatusBadRequest, "query required")
		}
		l.Error("search_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}
