package report

import (
	"time"

	"fundus/internal/features"
)

// Report is the assembled fact-and-metric record for one unit chain.
// Numeric fields that can be undefined are pointers and serialize as JSON
// null; null never conflates with a true zero.
type Report struct {
	Parcel     ParcelSection     `json:"parcel"`
	Building   BuildingSection   `json:"building"`
	Unit       UnitSection       `json:"unit"`
	Leases     LeasesSection     `json:"leases"`
	Valuation  ValuationSection  `json:"valuation"`
	Compliance ComplianceSection `json:"compliance"`
	Energy     EnergySection     `json:"energy"`
	Meta       MetaSection       `json:"_meta"`
}

type ParcelSection struct {
	Zoning string `json:"zoning"`
	MuniID string `json:"muni_id"`
	// Geohash of the boundary centroid; empty when no boundary is recorded.
	Geohash string `json:"geohash,omitempty"`
}

type BuildingSection struct {
	AgeYears int     `json:"age_years"`
	Floors   int     `json:"floors"`
	BuaM2    float64 `json:"bua_m2"`
}

type UnitSection struct {
	UseType string  `json:"use_type"`
	NlaM2   float64 `json:"nla_m2"`
	FloorNo int     `json:"floor_no"`
}

type LeasesSection struct {
	ActiveCount      int     `json:"active_count"`
	RentMonthlyTotal float64 `json:"rent_monthly_total"`
}

type ValuationSection struct {
	AssumedCapRate      float64  `json:"assumed_cap_rate"`
	NOIAnnual           float64  `json:"noi_annual"`
	ImpliedValue        *float64 `json:"implied_value"`
	LTVFromInputBalance *float64 `json:"ltv_from_input_balance"`
}

type ComplianceSection struct {
	DaysSinceOccupancy *int                   `json:"days_since_occupancy"`
	TitleClean         *bool                  `json:"title_clean"`
	ZoningUse          features.ZoningVerdict `json:"zoning_use"`
}

type EnergySection struct {
	KWhPerM2Day *float64 `json:"kwh_per_m2_day"`
	WindowDays  int      `json:"window_days"`
}

type MetaSection struct {
	GeneratedOn time.Time `json:"generated_on"`
}
