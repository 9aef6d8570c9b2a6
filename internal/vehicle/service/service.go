package service

import (
	"context"
	"errors"
	"log/slog"

	vehiclemetrics "apollo/internal/vehicle/metrics"
	"apollo/internal/vehicle/models"
	dErrors "apollo/pkg/domain-errors"
	"apollo/pkg/platform/sentinel"
)

// VehicleStore is the keyed persistence collaborator. Implementations must
// return sentinel.ErrNotFound for missing VINs; Save is an upsert.
type VehicleStore interface {
	FindByVIN(ctx context.Context, vin string) (models.Vehicle, error)
	Exists(ctx context.Context, vin string) (bool, error)
	Save(ctx context.Context, vehicle models.Vehicle) error
	Delete(ctx context.Context, vin string) error
	FindAll(ctx context.Context) ([]models.Vehicle, error)
}

// Service enforces the inventory business rules on top of the keyed store:
// VIN uniqueness on create, existence on read/update/delete, and the
// partial-merge contract on update. It holds no cross-request state.
type Service struct {
	vehicles VehicleStore
	logger   *slog.Logger
	metrics  *vehiclemetrics.Metrics
}

// New constructs the vehicle service. metrics may be nil in tests.
func New(vehicles VehicleStore, logger *slog.Logger, metrics *vehiclemetrics.Metrics) *Service {
	return &Service{
		vehicles: vehicles,
		logger:   logger,
		metrics:  metrics,
	}
}

// List returns every vehicle in whatever order the store yields. The result
// is never nil so the JSON layer serializes an empty inventory as [].
func (s *Service) List(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.vehicles.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list vehicles")
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return vehicles, nil
}

// Get returns the vehicle for vin.
func (s *Service) Get(ctx context.Context, vin string) (models.Vehicle, error) {
	vehicle, err := s.vehicles.FindByVIN(ctx, vin)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Vehicle{}, dErrors.Newf(dErrors.CodeNotFound, "Vehicle with VIN %s not found", vin)
		}
		return models.Vehicle{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch vehicle")
	}
	return vehicle, nil
}

// Create persists a field-validated candidate verbatim. The exists/save pair
// is check-then-act: two concurrent creates for one VIN can both pass the
// check and race on Save; the store's primary key is the true uniqueness
// enforcer, so the loser surfaces a store conflict rather than corrupt data.
func (s *Service) Create(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	exists, err := s.vehicles.Exists(ctx, vehicle.VIN)
	if err != nil {
		return models.Vehicle{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check vehicle existence")
	}
	if exists {
		return models.Vehicle{}, dErrors.Newf(dErrors.CodeConflict, "Vehicle with VIN %s already exists.", vehicle.VIN)
	}
	if err := s.vehicles.Save(ctx, vehicle); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return models.Vehicle{}, dErrors.Newf(dErrors.CodeConflict, "Vehicle with VIN %s already exists.", vehicle.VIN)
		}
		return models.Vehicle{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save vehicle")
	}

	s.logger.InfoContext(ctx, "vehicle created", "vin", vehicle.VIN)
	if s.metrics != nil {
		s.metrics.IncrementCreated()
	}
	return vehicle, nil
}

// Update merges a patch onto the existing record and persists the result.
// The VIN in the path identifies the record and is never overwritten.
func (s *Service) Update(ctx context.Context, vin string, patch models.VehiclePatch) (models.Vehicle, error) {
	vehicle, err := s.Get(ctx, vin)
	if err != nil {
		return models.Vehicle{}, err
	}

	patch.ApplyTo(&vehicle)

	if err := s.vehicles.Save(ctx, vehicle); err != nil {
		return models.Vehicle{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save vehicle")
	}

	s.logger.InfoContext(ctx, "vehicle updated", "vin", vin)
	if s.metrics != nil {
		s.metrics.IncrementUpdated()
	}
	return vehicle, nil
}

// Delete removes the vehicle for vin.
func (s *Service) Delete(ctx context.Context, vin string) error {
	exists, err := s.vehicles.Exists(ctx, vin)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check vehicle existence")
	}
	if !exists {
		return dErrors.Newf(dErrors.CodeNotFound, "Vehicle with VIN %s not found.", vin)
	}
	if err := s.vehicles.Delete(ctx, vin); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeNotFound, "Vehicle with VIN %s not found.", vin)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete vehicle")
	}

	s.logger.InfoContext(ctx, "vehicle deleted", "vin", vin)
	if s.metrics != nil {
		s.metrics.IncrementDeleted()
	}
	return nil
}
