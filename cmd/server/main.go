package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "apollo/internal/http"
	"apollo/internal/platform/config"
	"apollo/internal/platform/httpserver"
	"apollo/internal/platform/logger"
	platformmetrics "apollo/internal/platform/metrics"
	"apollo/internal/vehicle"
	vehiclemetrics "apollo/internal/vehicle/metrics"
	"apollo/internal/vehicle/service"
	"apollo/internal/vehicle/store"
)

// main wires dependencies explicitly and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	vehicleStore, cleanup, err := newStore(cfg)
	if err != nil {
		log.Error("store initialization failed", "error", err.Error())
		os.Exit(1)
	}
	defer cleanup()

	svc := vehicle.NewService(vehicleStore, log, vehiclemetrics.New())
	h := vehicle.NewHandler(svc, log)
	router := httpapi.NewRouter(h, log, platformmetrics.New())

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting vehicle inventory service", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
	log.Info("server stopped")
}

// newStore selects Postgres when DATABASE_URL is set and falls back to the
// in-memory store otherwise. The returned cleanup closes any pooled
// connections.
func newStore(cfg config.Server) (service.VehicleStore, func(), error) {
	if cfg.DatabaseURL == "" {
		return store.NewMemory(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	pg := store.NewPostgres(db)
	if err := pg.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return pg, func() { _ = db.Close() }, nil
}
