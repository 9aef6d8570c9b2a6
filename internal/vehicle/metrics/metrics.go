package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters for vehicle lifecycle events.
type Metrics struct {
	VehiclesCreated prometheus.Counter
	VehiclesUpdated prometheus.Counter
	VehiclesDeleted prometheus.Counter
}

// New creates and registers the vehicle metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		VehiclesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vehicle_inventory_created_total",
			Help: "Total number of vehicles created in the inventory",
		}),
		VehiclesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vehicle_inventory_updated_total",
			Help: "Total number of vehicle updates applied",
		}),
		VehiclesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vehicle_inventory_deleted_total",
			Help: "Total number of vehicles deleted from the inventory",
		}),
	}
}

// IncrementCreated increments the created counter by 1.
func (m *Metrics) IncrementCreated() {
	m.VehiclesCreated.Inc()
}

// IncrementUpdated increments the updated counter by 1.
func (m *Metrics) IncrementUpdated() {
	m.VehiclesUpdated.Inc()
}

// IncrementDeleted increments the deleted counter by 1.
func (m *Metrics) IncrementDeleted() {
	m.VehiclesDeleted.Inc()
}
