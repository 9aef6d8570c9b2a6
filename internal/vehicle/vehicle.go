package vehicle

import (
	"log/slog"

	"apollo/internal/vehicle/handler"
	"apollo/internal/vehicle/metrics"
	"apollo/internal/vehicle/service"
)

// Service exposes the vehicle inventory operations.
type Service = service.Service

// Handler wires the /vehicle HTTP endpoints to the service.
type Handler = handler.Handler

// NewService constructs the vehicle service with required dependencies.
func NewService(vehicles service.VehicleStore, logger *slog.Logger, m *metrics.Metrics) *Service {
	return service.New(vehicles, logger, m)
}

// NewHandler constructs an HTTP handler for the vehicle routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
