package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vendorbuddy/backend/internal/models"
	"github.com/vendorbuddy/backend/internal/mykafka"
	"github.com/vendorbuddy/backend/internal/repo"
	"github.com/vendorbuddy/backend/internal/service"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Repo   *repo.GormRepo
	Secret []byte
}

func InitTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
		return nil
	}

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.GroupOrder{},
		&models.GroupOrderRequest{},
		&models.Product{},
		&models.OrderTracking{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := InitTestDB(t)
	secret := []byte("test-session-secret")

	gormRepo := &repo.GormRepo{DB: db}
	producer := &mykafka.Producer{}

	e := echo.New()
	Register(e, &Deps{
		AuthHandler:       &AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, SessionSecret: secret, Producer: producer}},
		GroupOrderHandler: &GroupOrderHTTP{Svc: &service.GroupOrderService{Repo: gormRepo, Producer: producer}},
		ProductHandler:    &ProductHTTP{Svc: &service.ProductService{Repo: gormRepo, Producer: producer}},
		DashboardHandler:  &DashboardHTTP{Svc: &service.DashboardService{Repo: gormRepo}},
		SupplierHandler:   &SupplierHTTP{Svc: &service.SupplierService{Repo: gormRepo}},
		TrackingHandler:   &TrackingHTTP{Svc: &service.TrackingService{Repo: gormRepo}},
		SessionSecret:     secret,
	})

	return &testEnv{T: t, E: e, DB: db, Repo: gormRepo, Secret: secret}
}

func (env *testEnv) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	env.T.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}
