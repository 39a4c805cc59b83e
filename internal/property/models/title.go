package models

import (
	"fmt"
	"strings"
	"time"

	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
)

// Well-known encumbrance keys. The map is free-form key-value data from an
// external registry; new keys may appear without a schema change, so the set
// below is documented but deliberately non-exhaustive.
const (
	// EncumbranceLienStatus holds the registry's lien state. "free" and
	// "released" both mean no outstanding lien.
	EncumbranceLienStatus = "lien_status"
	// EncumbranceMortgagee names the lien holder when one exists.
	EncumbranceMortgagee = "mortgagee"
)

// TitleRecord is a deed registration scoped to a Parcel or a Unit.
//
// Invariants:
//   - ID is a non-nil identifier, DeedNo is non-empty
//   - scope tag is parcel or unit
//   - EffectiveOn is a recorded date
type TitleRecord struct {
	ID          domain.TitleID    `json:"id"`
	Scope       domain.ScopeRef   `json:"scope"`
	OwnerHash   string            `json:"owner_hash"`
	DeedNo      string            `json:"deed_no"`
	Encumbrance map[string]string `json:"encumbrance"`
	EffectiveOn time.Time         `json:"effective_on"`
}

func NewTitleRecord(id domain.TitleID, scope domain.ScopeRef, ownerHash, deedNo string, encumbrance map[string]string, effectiveOn time.Time) (TitleRecord, error) {
	if id.IsNil() {
		return TitleRecord{}, dErrors.New(dErrors.CodeInvariantViolation, "title id is required")
	}
	if !scope.Tag.OneOf(domain.ScopeParcel, domain.ScopeUnit) {
		return TitleRecord{}, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("title scope must be parcel or unit, got %q", scope.Tag))
	}
	if deedNo == "" {
		return TitleRecord{}, dErrors.New(dErrors.CodeInvariantViolation, "title deed_no is required")
	}
	if effectiveOn.IsZero() {
		return TitleRecord{}, dErrors.New(dErrors.CodeInvariantViolation, "title effective_on is required")
	}
	copied := make(map[string]string, len(encumbrance))
	for k, v := range encumbrance {
		copied[k] = v
	}
	return TitleRecord{
		ID:          id,
		Scope:       scope,
		OwnerHash:   ownerHash,
		DeedNo:      deedNo,
		Encumbrance: copied,
		EffectiveOn: effectiveOn,
	}, nil
}

// Clean reports whether the title carries no outstanding lien. Absence of the
// lien_status key fails closed: an unknown lien state is not a clean title.
func (t TitleRecord) Clean() bool {
	switch strings.ToLower(t.Encumbrance[EncumbranceLienStatus]) {
	case "free", "released":
		return true
	default:
		return false
	}
}
