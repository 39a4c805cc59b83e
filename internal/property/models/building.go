package models

import (
	"time"

	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
)

// Building sits on exactly one Parcel.
//
// Invariants:
//   - ID and ParcelID are non-nil identifiers
//   - BuiltUpAreaM2 is non-negative
type Building struct {
	ID            domain.BuildingID `json:"id"`
	ParcelID      domain.ParcelID   `json:"parcel_id"`
	YearBuilt     int               `json:"year_built"`
	Structure     string            `json:"structure"`
	Floors        int               `json:"floors"`
	BuiltUpAreaM2 float64           `json:"bua_m2"`
}

func NewBuilding(id domain.BuildingID, parcelID domain.ParcelID, yearBuilt int, structure string, floors int, buaM2 float64) (Building, error) {
	if id.IsNil() {
		return Building{}, dErrors.New(dErrors.CodeInvariantViolation, "building id is required")
	}
	if parcelID.IsNil() {
		return Building{}, dErrors.New(dErrors.CodeInvariantViolation, "building parcel_id is required")
	}
	if buaM2 < 0 {
		return Building{}, dErrors.New(dErrors.CodeInvariantViolation, "building bua_m2 cannot be negative")
	}
	return Building{
		ID:            id,
		ParcelID:      parcelID,
		YearBuilt:     yearBuilt,
		Structure:     structure,
		Floors:        floors,
		BuiltUpAreaM2: buaM2,
	}, nil
}

// AgeYears is the calendar-year age at asOf: asOf.Year - YearBuilt, no
// rounding, no leap adjustment. A building recorded with a future YearBuilt
// yields a negative age rather than a clamped zero, so bad records stay
// visible downstream.
func (b Building) AgeYears(asOf time.Time) int {
	return asOf.Year() - b.YearBuilt
}

func (Building) EntityKind() domain.ScopeTag { return domain.ScopeBuilding }
