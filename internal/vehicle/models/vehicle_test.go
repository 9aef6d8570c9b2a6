package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// VehicleValidationSuite tests field-level validation of the Vehicle entity.
type VehicleValidationSuite struct {
	suite.Suite
}

func TestVehicleValidationSuite(t *testing.T) {
	suite.Run(t, new(VehicleValidationSuite))
}

func (s *VehicleValidationSuite) validVehicle() Vehicle {
	return Vehicle{
		VIN:              "ABCDE12345ABCDE12",
		ManufacturerName: "Toyota",
		Description:      "SUV",
		HorsePower:       150,
		ModelName:        "Camry",
		ModelYear:        2020,
		PurchasePrice:    MustPrice("25000.00"),
		FuelType:         "Gasoline",
		Color:            "Black",
		Category:         "SUV",
	}
}

func (s *VehicleValidationSuite) TestValidVehiclePasses() {
	s.Nil(s.validVehicle().Validate())
}

func (s *VehicleValidationSuite) TestVIN() {
	s.Run("missing VIN", func() {
		v := s.validVehicle()
		v.VIN = ""
		errs := v.Validate()
		s.Require().NotNil(errs)
		s.Equal("VIN cannot be null", errs["vin"])
	})

	s.Run("short VIN", func() {
		v := s.validVehicle()
		v.VIN = "SHORT"
		s.Equal("VIN must be exactly 17 characters", v.Validate()["vin"])
	})

	s.Run("long VIN", func() {
		v := s.validVehicle()
		v.VIN = "ABCDE12345ABCDE12X"
		s.Equal("VIN must be exactly 17 characters", v.Validate()["vin"])
	})
}

func (s *VehicleValidationSuite) TestStringFields() {
	cases := []struct {
		field   string
		mutate  func(*Vehicle)
		message string
	}{
		{"manufacturerName", func(v *Vehicle) { v.ManufacturerName = "" }, "Manufacturer name cannot be null"},
		{"description", func(v *Vehicle) { v.Description = "   " }, "Description cannot be null"},
		{"modelName", func(v *Vehicle) { v.ModelName = "" }, "Model name cannot be null"},
		{"fuelType", func(v *Vehicle) { v.FuelType = "\t" }, "Fuel type cannot be null"},
		{"color", func(v *Vehicle) { v.Color = "" }, "Color cannot be null"},
		{"category", func(v *Vehicle) { v.Category = "" }, "Category cannot be null"},
	}
	for _, tc := range cases {
		s.Run(tc.field, func() {
			v := s.validVehicle()
			tc.mutate(&v)
			s.Equal(tc.message, v.Validate()[tc.field])
		})
	}
}

func (s *VehicleValidationSuite) TestNumericFields() {
	s.Run("zero horse power", func() {
		v := s.validVehicle()
		v.HorsePower = 0
		s.Equal("Horse power must be greater than 0", v.Validate()["horsePower"])
	})

	s.Run("negative horse power", func() {
		v := s.validVehicle()
		v.HorsePower = -5
		s.Equal("Horse power must be greater than 0", v.Validate()["horsePower"])
	})

	s.Run("missing model year", func() {
		v := s.validVehicle()
		v.ModelYear = 0
		s.Equal("Model year cannot be null", v.Validate()["modelYear"])
	})

	s.Run("zero purchase price", func() {
		v := s.validVehicle()
		v.PurchasePrice = Price{}
		s.Equal("Purchase price must be greater than 0", v.Validate()["purchasePrice"])
	})

	s.Run("negative purchase price", func() {
		v := s.validVehicle()
		v.PurchasePrice = MustPrice("-1.00")
		s.Equal("Purchase price must be greater than 0", v.Validate()["purchasePrice"])
	})
}

func (s *VehicleValidationSuite) TestCollectsAllViolations() {
	// Validation must not fail fast: a mostly-empty record reports every
	// offending field at once.
	v := Vehicle{
		VIN:              "ABCDE12345ABCDE12",
		ManufacturerName: "Toyota",
		HorsePower:       150,
	}
	errs := v.Validate()
	s.Require().NotNil(errs)
	s.Len(errs, 7)
	for _, field := range []string{
		"description", "modelName", "modelYear", "purchasePrice",
		"fuelType", "color", "category",
	} {
		s.Contains(errs, field)
	}
	s.NotContains(errs, "vin")
	s.NotContains(errs, "manufacturerName")
	s.NotContains(errs, "horsePower")
}
