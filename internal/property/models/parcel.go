package models

import (
	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
	"fundus/pkg/geo"
)

// Parcel is the root of the ownership hierarchy: a municipal land parcel.
//
// Invariants:
//   - ID is a non-nil identifier
//   - MuniID (the municipality's own parcel number) is non-empty
//
// The boundary is optional: registries do not always publish geometry, and
// every derived metric that needs it degrades to undefined without it.
type Parcel struct {
	ID       domain.ParcelID `json:"id"`
	MuniID   string          `json:"muni_id"`
	Zoning   string          `json:"zoning"`
	Boundary geo.Polygon     `json:"boundary,omitzero"`
}

func NewParcel(id domain.ParcelID, muniID, zoning string, boundary geo.Polygon) (Parcel, error) {
	if id.IsNil() {
		return Parcel{}, dErrors.New(dErrors.CodeInvariantViolation, "parcel id is required")
	}
	if muniID == "" {
		return Parcel{}, dErrors.New(dErrors.CodeInvariantViolation, "parcel muni_id is required")
	}
	return Parcel{ID: id, MuniID: muniID, Zoning: zoning, Boundary: boundary}, nil
}

func (Parcel) EntityKind() domain.ScopeTag { return domain.ScopeParcel }
