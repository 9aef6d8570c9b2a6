package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"apollo/internal/vehicle/models"
	"apollo/pkg/platform/sentinel"

	"github.com/lib/pq"
)

// Postgres persists vehicles in PostgreSQL via database/sql and lib/pq.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed vehicle store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the vehicles table if it does not exist. Single-table
// schema, so full migration tooling would be overkill here.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS vehicles (
			vin               VARCHAR(17)    PRIMARY KEY,
			manufacturer_name TEXT           NOT NULL,
			description       TEXT           NOT NULL,
			horse_power       INTEGER        NOT NULL,
			model_name        TEXT           NOT NULL,
			model_year        INTEGER        NOT NULL,
			purchase_price    NUMERIC(10, 2) NOT NULL,
			fuel_type         TEXT           NOT NULL,
			color             TEXT           NOT NULL,
			category          TEXT           NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure vehicles schema: %w", err)
	}
	return nil
}

const vehicleColumns = `vin, manufacturer_name, description, horse_power, model_name,
		model_year, purchase_price, fuel_type, color, category`

func (s *Postgres) FindByVIN(ctx context.Context, vin string) (models.Vehicle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE vin = $1`, vin)
	vehicle, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vehicle{}, sentinel.ErrNotFound
		}
		return models.Vehicle{}, fmt.Errorf("find vehicle by vin: %w", err)
	}
	return vehicle, nil
}

func (s *Postgres) Exists(ctx context.Context, vin string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM vehicles WHERE vin = $1)`, vin).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check vehicle existence: %w", err)
	}
	return exists, nil
}

func (s *Postgres) Save(ctx context.Context, v models.Vehicle) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vehicles (`+vehicleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (vin) DO UPDATE SET
			manufacturer_name = EXCLUDED.manufacturer_name,
			description       = EXCLUDED.description,
			horse_power       = EXCLUDED.horse_power,
			model_name        = EXCLUDED.model_name,
			model_year        = EXCLUDED.model_year,
			purchase_price    = EXCLUDED.purchase_price,
			fuel_type         = EXCLUDED.fuel_type,
			color             = EXCLUDED.color,
			category          = EXCLUDED.category`,
		v.VIN, v.ManufacturerName, v.Description, v.HorsePower, v.ModelName,
		v.ModelYear, v.PurchasePrice.String(), v.FuelType, v.Color, v.Category)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("save vehicle: %w", err)
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, vin string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM vehicles WHERE vin = $1`, vin)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vehicle: rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) FindAll(ctx context.Context) ([]models.Vehicle, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+vehicleColumns+`
		FROM vehicles`)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]models.Vehicle, 0)
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("list vehicles: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (models.Vehicle, error) {
	var (
		v     models.Vehicle
		price string
	)
	err := row.Scan(&v.VIN, &v.ManufacturerName, &v.Description, &v.HorsePower,
		&v.ModelName, &v.ModelYear, &price, &v.FuelType, &v.Color, &v.Category)
	if err != nil {
		return models.Vehicle{}, err
	}
	v.PurchasePrice, err = models.NewPrice(price)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("scan purchase price: %w", err)
	}
	return v, nil
}
