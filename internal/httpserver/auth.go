package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vendorbuddy/backend/internal/logging"
	"github.com/vendorbuddy/backend/internal/middleware"
	"github.com/vendorbuddy/backend/internal/service"
	"github.com/vendorbuddy/backend/internal/tokens"
	"github.com/vendorbuddy/backend/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Signup(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			l.Warn("signup_error", "status", 400, "reason", "user already exists")
			return echo.NewHTTPError(http.StatusBadRequest, "User already exists")
		}
		if errors.Is(err, service.ErrValidation) {
			l.Warn("signup_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("signup_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	l.Info("signup_success", "user_type", user.UserType)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "New user created",
		"user":    user,
	})
}

func (h *AuthHTTP) Signin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signin")

	var req transport.SigninRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signin_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, token, exp, err := h.Svc.Signin(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("signin_error", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("signin_error", "status", 401, "reason", "invalid password")
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid password")
		}
		l.Error("signin_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	c.SetCookie(tokens.CreateCookie(middleware.SessionCookie, token, "/", exp))

	l.Info("signin_success")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Signed in successfully",
		"user":    user,
	})
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.me")

	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	user, supplierID, err := h.Svc.Me(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("me_error", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("me_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":       user,
		"supplierId": supplierID,
	})
}
