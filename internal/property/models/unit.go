package models

import (
	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
)

// Unit is a lettable space inside exactly one Building. The Unit -> Building
// -> Parcel chain is a strict three-level tree.
//
// Invariants:
//   - ID and BuildingID are non-nil identifiers
//   - NetLettableAreaM2 is non-negative
//   - Bedrooms, when recorded, is non-negative
type Unit struct {
	ID                domain.UnitID     `json:"id"`
	BuildingID        domain.BuildingID `json:"building_id"`
	UseType           string            `json:"use_type"`
	NetLettableAreaM2 float64           `json:"nla_m2"`
	FloorNo           int               `json:"floor_no"`
	Bedrooms          *int              `json:"bedrooms,omitempty"`
	Orientation       string            `json:"orientation,omitempty"`
}

func NewUnit(id domain.UnitID, buildingID domain.BuildingID, useType string, nlaM2 float64, floorNo int, bedrooms *int, orientation string) (Unit, error) {
	if id.IsNil() {
		return Unit{}, dErrors.New(dErrors.CodeInvariantViolation, "unit id is required")
	}
	if buildingID.IsNil() {
		return Unit{}, dErrors.New(dErrors.CodeInvariantViolation, "unit building_id is required")
	}
	if nlaM2 < 0 {
		return Unit{}, dErrors.New(dErrors.CodeInvariantViolation, "unit nla_m2 cannot be negative")
	}
	if bedrooms != nil && *bedrooms < 0 {
		return Unit{}, dErrors.New(dErrors.CodeInvariantViolation, "unit bedrooms cannot be negative")
	}
	return Unit{
		ID:                id,
		BuildingID:        buildingID,
		UseType:           useType,
		NetLettableAreaM2: nlaM2,
		FloorNo:           floorNo,
		Bedrooms:          bedrooms,
		Orientation:       orientation,
	}, nil
}

func (Unit) EntityKind() domain.ScopeTag { return domain.ScopeUnit }
