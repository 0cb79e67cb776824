package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vendorbuddy/backend/internal/middleware"
)

type Deps struct {
	AuthHandler       *AuthHTTP
	GroupOrderHandler *GroupOrderHTTP
	ProductHandler    *ProductHTTP
	DashboardHandler  *DashboardHTTP
	SupplierHandler   *SupplierHTTP
	TrackingHandler   *TrackingHTTP
	SessionSecret     []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "Server is running fine!") })

	sess := middleware.NewSession(d.SessionSecret)

	e.POST("/signup", d.AuthHandler.Signup)
	e.POST("/signin", d.AuthHandler.Signin)
	e.GET("/me", d.AuthHandler.Me, sess.RequireSession)

	e.GET("/vendor/dashboard-data", d.DashboardHandler.Vendor, sess.RequireSession)
	e.GET("/supplier/dashboard-data", d.DashboardHandler.Supplier)

	e.POST("/supplier/add-product", d.ProductHandler.Add)
	e.GET("/supplier/:id/products", d.ProductHandler.ListBySupplier)
	e.GET("/products/search", d.ProductHandler.Search)

	e.GET("/group-orders", d.GroupOrderHandler.ListRequests)
	e.GET("/group-orders/active", d.GroupOrderHandler.ListActive)
	e.POST("/group-orders", d.GroupOrderHandler.Create)
	e.POST("/group-orders/:id/join", d.GroupOrderHandler.Join)

	e.GET("/suppliers", d.SupplierHandler.List)
	e.GET("/order-tracking/:id", d.TrackingHandler.Get)
}
