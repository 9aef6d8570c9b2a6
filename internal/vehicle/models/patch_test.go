package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string { return &s }

func pricePtr(s string) *Price {
	p := MustPrice(s)
	return &p
}

func storedVehicle() Vehicle {
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

func TestEmptyPatchIsNoOp(t *testing.T) {
	v := storedVehicle()
	VehiclePatch{}.ApplyTo(&v)
	assert.Equal(t, storedVehicle(), v)
}

func TestPatchMergesPresentFields(t *testing.T) {
	v := storedVehicle()
	patch := VehiclePatch{
		HorsePower: 180,
		ModelName:  stringPtr("Sedan"),
	}
	patch.ApplyTo(&v)

	assert.Equal(t, 180, v.HorsePower)
	assert.Equal(t, "Sedan", v.ModelName)

	// Everything else is untouched.
	assert.Equal(t, "ABCDE12345ABCDE12", v.VIN)
	assert.Equal(t, "Toyota", v.ManufacturerName)
	assert.Equal(t, "SUV", v.Description)
	assert.Equal(t, 2020, v.ModelYear)
	assert.True(t, v.PurchasePrice.Equal(MustPrice("25000.00")))
	assert.Equal(t, "Gasoline", v.FuelType)
	assert.Equal(t, "Black", v.Color)
	assert.Equal(t, "SUV", v.Category)
}

func TestPatchZeroNumericMeansAbsent(t *testing.T) {
	// The presence rule for numeric fields conflates "omitted" with "set to
	// a non-positive value": both leave the record unchanged.
	v := storedVehicle()
	VehiclePatch{HorsePower: 0, ModelYear: -1}.ApplyTo(&v)

	assert.Equal(t, 150, v.HorsePower)
	assert.Equal(t, 2020, v.ModelYear)
}

func TestPatchEmptyStringOverwrites(t *testing.T) {
	// Presence for strings is non-null, not non-blank: an explicit empty
	// string does overwrite.
	v := storedVehicle()
	VehiclePatch{Description: stringPtr("")}.ApplyTo(&v)

	assert.Equal(t, "", v.Description)
}

func TestPatchAllFields(t *testing.T) {
	v := storedVehicle()
	patch := VehiclePatch{
		ManufacturerName: stringPtr("Honda"),
		Description:      stringPtr("Compact"),
		HorsePower:       120,
		ModelName:        stringPtr("Civic"),
		ModelYear:        2022,
		PurchasePrice:    pricePtr("19999.99"),
		FuelType:         stringPtr("Hybrid"),
		Color:            stringPtr("White"),
		Category:         stringPtr("Sedan"),
	}
	patch.ApplyTo(&v)

	assert.Equal(t, Vehicle{
		VIN:              "ABCDE12345ABCDE12",
		ManufacturerName: "Honda",
		Description:      "Compact",
		HorsePower:       120,
		ModelName:        "Civic",
		ModelYear:        2022,
		PurchasePrice:    MustPrice("19999.99"),
		FuelType:         "Hybrid",
		Color:            "White",
		Category:         "Sedan",
	}, v)
}

func TestPatchDecoding(t *testing.T) {
	t.Run("omitted and null fields are absent", func(t *testing.T) {
		var patch VehiclePatch
		require.NoError(t, json.Unmarshal([]byte(`{"modelName": null}`), &patch))

		assert.Nil(t, patch.ModelName)
		assert.Nil(t, patch.ManufacturerName)
		assert.Zero(t, patch.HorsePower)
	})

	t.Run("vin in the body is ignored", func(t *testing.T) {
		var patch VehiclePatch
		require.NoError(t, json.Unmarshal([]byte(`{"vin": "ZZZZZZZZZZZZZZZZZ", "color": "Red"}`), &patch))

		v := storedVehicle()
		patch.ApplyTo(&v)
		assert.Equal(t, "ABCDE12345ABCDE12", v.VIN)
		assert.Equal(t, "Red", v.Color)
	})
}

func TestPatchValidate(t *testing.T) {
	assert.Nil(t, VehiclePatch{}.Validate())
	assert.Nil(t, VehiclePatch{PurchasePrice: pricePtr("10.00")}.Validate())

	errs := VehiclePatch{PurchasePrice: pricePtr("0")}.Validate()
	require.NotNil(t, errs)
	assert.Equal(t, "Purchase price must be greater than 0", errs["purchasePrice"])
}
