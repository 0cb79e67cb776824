package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/vendorbuddy/backend/internal/config"
	"github.com/vendorbuddy/backend/internal/db"
	"github.com/vendorbuddy/backend/internal/es"
	"github.com/vendorbuddy/backend/internal/httpserver"
	"github.com/vendorbuddy/backend/internal/logging"
	"github.com/vendorbuddy/backend/internal/middleware"
	"github.com/vendorbuddy/backend/internal/mykafka"
	"github.com/vendorbuddy/backend/internal/repo"
	"github.com/vendorbuddy/backend/internal/service"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.SessionSecret, "SESSION_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	producer := mykafka.NewProducer(cfg.KafkaBrokers)

	gormRepo := &repo.GormRepo{DB: gdb}

	productSvc := &service.ProductService{Repo: gormRepo, Producer: producer}
	if cfg.ESURL != "" {
		client, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		productSvc.ES = client
	}

	deps := &httpserver.Deps{
		AuthHandler:       &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, SessionSecret: cfg.SessionSecret, Producer: producer}},
		GroupOrderHandler: &httpserver.GroupOrderHTTP{Svc: &service.GroupOrderService{Repo: gormRepo, Producer: producer}},
		ProductHandler:    &httpserver.ProductHTTP{Svc: productSvc},
		DashboardHandler:  &httpserver.DashboardHTTP{Svc: &service.DashboardService{Repo: gormRepo}},
		SupplierHandler:   &httpserver.SupplierHTTP{Svc: &service.SupplierService{Repo: gormRepo}},
		TrackingHandler:   &httpserver.TrackingHTTP{Svc: &service.TrackingService{Repo: gormRepo}},
		SessionSecret:     cfg.SessionSecret,
	}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
