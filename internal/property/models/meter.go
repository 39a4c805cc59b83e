package models

import (
	"fmt"
	"time"

	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
)

// Well-known meter types. The field is open municipal/provider text; these
// are the values the report builder looks for.
const (
	MeterTypeElectricity = "electricity"
	MeterTypeWater       = "water"
	MeterTypeGas         = "gas"
)

// Meter is a utility meter scoped to either a Building or a Unit via a
// polymorphic reference. The tag/kind consistency is cross-checked at
// resolution time, not here, since construction may precede lookup.
type Meter struct {
	ID           domain.MeterID  `json:"id"`
	Scope        domain.ScopeRef `json:"scope"`
	Type         string          `json:"type"`
	ProviderAcct string          `json:"provider_acct,omitempty"`
}

func NewMeter(id domain.MeterID, scope domain.ScopeRef, meterType, providerAcct string) (Meter, error) {
	if id.IsNil() {
		return Meter{}, dErrors.New(dErrors.CodeInvariantViolation, "meter id is required")
	}
	if !scope.Tag.OneOf(domain.ScopeBuilding, domain.ScopeUnit) {
		return Meter{}, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("meter scope must be building or unit, got %q", scope.Tag))
	}
	if meterType == "" {
		return Meter{}, dErrors.New(dErrors.CodeInvariantViolation, "meter type is required")
	}
	return Meter{ID: id, Scope: scope, Type: meterType, ProviderAcct: providerAcct}, nil
}

// MeterReading is one timestamped register value. Readings need not arrive
// contiguous or monotonic; windowed computations order them by timestamp.
// Uniqueness per (meter, timestamp) is enforced by storage, not here.
type MeterReading struct {
	MeterID   domain.MeterID `json:"meter_id"`
	Timestamp time.Time      `json:"ts"`
	Value     float64        `json:"value"`
}

func NewMeterReading(meterID domain.MeterID, ts time.Time, value float64) (MeterReading, error) {
	if meterID.IsNil() {
		return MeterReading{}, dErrors.New(dErrors.CodeInvariantViolation, "reading meter_id is required")
	}
	if ts.IsZero() {
		return MeterReading{}, dErrors.New(dErrors.CodeInvariantViolation, "reading timestamp is required")
	}
	return MeterReading{MeterID: meterID, Timestamp: ts, Value: value}, nil
}
