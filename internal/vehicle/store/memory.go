package store

import (
	"context"
	"sync"

	"apollo/internal/vehicle/models"
	"apollo/pkg/platform/sentinel"
)

// Memory is an in-memory vehicle store. It backs local development when no
// DATABASE_URL is configured and serves as the store double in unit tests.
// It favors clarity over performance.
type Memory struct {
	mu       sync.RWMutex
	vehicles map[string]models.Vehicle
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{vehicles: make(map[string]models.Vehicle)}
}

func (s *Memory) FindByVIN(_ context.Context, vin string) (models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if vehicle, ok := s.vehicles[vin]; ok {
		return vehicle, nil
	}
	return models.Vehicle{}, sentinel.ErrNotFound
}

func (s *Memory) Exists(_ context.Context, vin string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.vehicles[vin]
	return ok, nil
}

func (s *Memory) Save(_ context.Context, vehicle models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles[vehicle.VIN] = vehicle
	return nil
}

func (s *Memory) Delete(_ context.Context, vin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[vin]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.vehicles, vin)
	return nil
}

func (s *Memory) FindAll(_ context.Context) ([]models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vehicles := make([]models.Vehicle, 0, len(s.vehicles))
	for _, vehicle := range s.vehicles {
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, nil
}
