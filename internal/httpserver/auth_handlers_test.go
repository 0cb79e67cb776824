package httpserver

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vendorbuddy/backend/internal/models"
	"github.com/vendorbuddy/backend/internal/transport"
)

func vendorSignup(email string) transport.SignupRequest {
	return transport.SignupRequest{
		Email:        email,
		FullName:     "Test Vendor",
		BusinessName: "Test Stall",
		Phone:        "555-0100",
		Location:     "Market Street",
		Password:     "password",
		UserType:     "vendor",
	}
}

func supplierSignup(email, businessName string) transport.SignupRequest {
	return transport.SignupRequest{
		Email:        email,
		FullName:     "Test Supplier",
		BusinessName: businessName,
		Password:     "password",
		UserType:     "supplier",
	}
}

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/signup", vendorSignup("vendor@test.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, "vendor@test.com", resp.User.Email)
	require.Equal(t, "vendor", resp.User.UserType)
	require.NotEmpty(t, resp.User.ID)
	require.Nil(t, resp.User.SupplierID)
	require.NotContains(t, rec.Body.String(), "password")

	var stored models.User
	require.NoError(t, env.DB.Where("email = ?", "vendor@test.com").First(&stored).Error)
	require.NotEqual(t, "password", stored.PasswordHash)
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/signup", vendorSignup("dup@test.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/signup", vendorSignup("dup@test.com"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "User already exists")

	var count int64
	require.NoError(t, env.DB.Model(&models.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestSignupSupplierCreatesSupplier(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/signup", supplierSignup("acme@test.com", "Acme Wholesale"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	decodeBody(t, rec, &resp)
	require.NotNil(t, resp.User.SupplierID)

	supplier, err := env.Repo.GetSupplier(context.Background(), *resp.User.SupplierID)
	require.NoError(t, err)
	require.Equal(t, "Acme Wholesale", supplier.Name)
	require.False(t, supplier.Verified)

	// duplicate email must not leave an orphaned supplier behind
	rec = env.do(http.MethodPost, "/signup", supplierSignup("acme@test.com", "Acme Again"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var supplierCount int64
	require.NoError(t, env.DB.Model(&models.Supplier{}).Count(&supplierCount).Error)
	require.Equal(t, int64(1), supplierCount)
}

func TestSignupValidation(t *testing.T) {
	env := newTestEnv(t)

	req := vendorSignup("novalid@test.com")
	req.UserType = "admin"
	rec := env.do(http.MethodPost, "/signup", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	req = vendorSignup("novalid@test.com")
	req.Password = ""
	rec = env.do(http.MethodPost, "/signup", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/signup", vendorSignup("login@test.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/signin", transport.SigninRequest{Email: "missing@test.com", Password: "password"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "User not found")

	rec = env.do(http.MethodPost, "/signin", transport.SigninRequest{Email: "login@test.com", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid password")

	rec = env.do(http.MethodPost, "/signin", transport.SigninRequest{Email: "login@test.com", Password: "password"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Signed in successfully")

	cookie := sessionCookie(t, rec)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
	// the session token is signed, never the raw email
	require.NotContains(t, cookie.Value, "login@test.com")
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/me", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodPost, "/signup", supplierSignup("me@test.com", "Me Wholesale"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/signin", transport.SigninRequest{Email: "me@test.com", Password: "password"})
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)

	rec = env.do(http.MethodGet, "/me", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User       models.User `json:"user"`
		SupplierID *string     `json:"supplierId"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, "me@test.com", resp.User.Email)
	require.NotNil(t, resp.SupplierID)

	rec = env.do(http.MethodGet, "/me", nil, &http.Cookie{Name: "session", Value: "garbage"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
