package features

import (
	"time"

	"fundus/internal/property/models"
)

// ZoningVerdict is the three-valued outcome of a zoning compatibility
// check. Unknown is a distinct answer, never collapsed into either boolean:
// an unmapped zoning code does not imply compliance.
type ZoningVerdict string

const (
	ZoningCompatible   ZoningVerdict = "compatible"
	ZoningIncompatible ZoningVerdict = "incompatible"
	ZoningUnknown      ZoningVerdict = "unknown"
)

// CompatibilityTable maps a zoning code to the use types it permits.
type CompatibilityTable map[string][]string

// ZoningCheck looks the (zoning, useType) pair up in a static table.
// A zoning code absent from the table yields Unknown; a mapped code with
// the use type outside its permitted list yields Incompatible.
func ZoningCheck(zoning, useType string, table CompatibilityTable) ZoningVerdict {
	allowed, ok := table[zoning]
	if !ok {
		return ZoningUnknown
	}
	for _, u := range allowed {
		if u == useType {
			return ZoningCompatible
		}
	}
	return ZoningIncompatible
}

// DaysSinceLastOccupancy is the whole days elapsed between the permit's
// completion and asOf. Undefined when no permit is supplied or the permit
// has no completion date.
func DaysSinceLastOccupancy(permit *models.Permit, asOf time.Time) (int, bool) {
	if permit == nil || permit.CompletedOn == nil {
		return 0, false
	}
	return int(asOf.Sub(*permit.CompletedOn).Hours() / 24), true
}
