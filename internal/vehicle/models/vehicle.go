package models

import "strings"

// VINLength is the fixed length of a Vehicle Identification Number.
const VINLength = 17

// Vehicle is the sole inventory entity, keyed by VIN.
//
// Invariants:
//   - VIN is exactly 17 characters, unique, and immutable after creation
//   - every other field is required (strings non-blank, horsePower >= 1,
//     purchasePrice > 0, modelYear non-zero)
//
// A Vehicle reaches the store only after Validate returns no violations;
// partial records never persist.
type Vehicle struct {
	VIN              string `json:"vin"`
	ManufacturerName string `json:"manufacturerName"`
	Description      string `json:"description"`
	HorsePower       int    `json:"horsePower"`
	ModelName        string `json:"modelName"`
	ModelYear        int    `json:"modelYear"`
	PurchasePrice    Price  `json:"purchasePrice"`
	FuelType         string `json:"fuelType"`
	Color            string `json:"color"`
	Category         string `json:"category"`
}

// FieldErrors maps a field's JSON name to a single violation message. It is
// the body of a 422 response, so messages are client-facing.
type FieldErrors map[string]string

// Validate checks every field constraint and collects one message per
// offending field rather than failing fast, so a client sees all problems
// in one response.
func (v Vehicle) Validate() FieldErrors {
	errs := FieldErrors{}

	switch {
	case v.VIN == "":
		errs["vin"] = "VIN cannot be null"
	case len(v.VIN) != VINLength:
		errs["vin"] = "VIN must be exactly 17 characters"
	}
	if isBlank(v.ManufacturerName) {
		errs["manufacturerName"] = "Manufacturer name cannot be null"
	}
	if isBlank(v.Description) {
		errs["description"] = "Description cannot be null"
	}
	if v.HorsePower < 1 {
		errs["horsePower"] = "Horse power must be greater than 0"
	}
	if isBlank(v.ModelName) {
		errs["modelName"] = "Model name cannot be null"
	}
	if v.ModelYear == 0 {
		errs["modelYear"] = "Model year cannot be null"
	}
	if !v.PurchasePrice.IsPositive() {
		errs["purchasePrice"] = "Purchase price must be greater than 0"
	}
	if isBlank(v.FuelType) {
		errs["fuelType"] = "Fuel type cannot be null"
	}
	if isBlank(v.Color) {
		errs["color"] = "Color cannot be null"
	}
	if isBlank(v.Category) {
		errs["category"] = "Category cannot be null"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
