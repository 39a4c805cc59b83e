package report

import "fundus/internal/features"

// DefaultZoningTable maps the zoning codes municipal registries commonly
// emit to the unit use types they permit. Codes outside the table keep the
// three-valued check at "unknown".
func DefaultZoningTable() features.CompatibilityTable {
	return features.CompatibilityTable{
		"residential": {"apartment", "villa", "duplex", "studio"},
		"commercial":  {"retail", "office", "showroom"},
		"mixed":       {"apartment", "studio", "retail", "office"},
		"industrial":  {"warehouse", "workshop"},
	}
}
