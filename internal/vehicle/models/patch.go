package models

// VehiclePatch is the partial-update payload for PUT /vehicle/{vin}. It is a
// distinct type from Vehicle so "field absent" is representable.
//
// Presence rules, by field kind:
//   - string and price fields: present when the JSON value was non-null.
//     An explicit empty string counts as present and does overwrite.
//   - integer fields (horsePower, modelYear): present only when the value
//     is strictly greater than zero. A patch of 0 or a negative value is
//     indistinguishable from an omitted field and leaves the record
//     unchanged. This conflation is a deliberate compatibility quirk of the
//     wire contract, not a bug.
//
// The patch carries no VIN: the key is immutable and any vin property in
// the request body is ignored.
type VehiclePatch struct {
	ManufacturerName *string `json:"manufacturerName"`
	Description      *string `json:"description"`
	HorsePower       int     `json:"horsePower"`
	ModelName        *string `json:"modelName"`
	ModelYear        int     `json:"modelYear"`
	PurchasePrice    *Price  `json:"purchasePrice"`
	FuelType         *string `json:"fuelType"`
	Color            *string `json:"color"`
	Category         *string `json:"category"`
}

// Validate checks only the supplied fields. Absent fields carry no
// constraints; a present purchase price must still be positive.
func (p VehiclePatch) Validate() FieldErrors {
	errs := FieldErrors{}
	if p.PurchasePrice != nil && !p.PurchasePrice.IsPositive() {
		errs["purchasePrice"] = "Purchase price must be greater than 0"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ApplyTo merges the present patch fields onto an existing record,
// field-by-field per the presence rules above. The record's VIN is never
// touched. An empty patch is a no-op.
func (p VehiclePatch) ApplyTo(v *Vehicle) {
	if p.ManufacturerName != nil {
		v.ManufacturerName = *p.ManufacturerName
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.HorsePower > 0 {
		v.HorsePower = p.HorsePower
	}
	if p.ModelName != nil {
		v.ModelName = *p.ModelName
	}
	if p.ModelYear > 0 {
		v.ModelYear = p.ModelYear
	}
	if p.PurchasePrice != nil {
		v.PurchasePrice = *p.PurchasePrice
	}
	if p.FuelType != nil {
		v.FuelType = *p.FuelType
	}
	if p.Color != nil {
		v.Color = *p.Color
	}
	if p.Category != nil {
		v.Category = *p.Category
	}
}
