// Package inference declares the extension points reserved for estimated
// quantities: automated valuation, market rent recommendation, default
// risk. Only the signatures and null implementations live here. Nothing in
// the deterministic derivation layer consults these strategies; every
// reported number is an exact function of recorded facts, and estimation
// belongs to a future module behind these interfaces.
package inference

import (
	"context"

	"fundus/internal/property/models"
)

// ValueEstimator proposes a fair value for a unit from its chain and
// whatever comparables the implementation consults. ok=false means no
// estimate.
type ValueEstimator interface {
	EstimateValue(ctx context.Context, unit models.Unit, building models.Building, parcel models.Parcel) (value float64, ok bool, err error)
}

// RentEstimator proposes a market rent for a unit. ok=false means no
// estimate.
type RentEstimator interface {
	EstimateMarketRent(ctx context.Context, unit models.Unit) (rentMonthly float64, ok bool, err error)
}

// DefaultRiskScorer scores a lease's default propensity on [0,1].
// ok=false means no score.
type DefaultRiskScorer interface {
	ScoreDefaultRisk(ctx context.Context, lease models.Lease) (score float64, ok bool, err error)
}

// Null declines every estimate. It is the only implementation shipped.
type Null struct{}

var (
	_ ValueEstimator    = Null{}
	_ RentEstimator     = Null{}
	_ DefaultRiskScorer = Null{}
)

func (Null) EstimateValue(context.Context, models.Unit, models.Building, models.Parcel) (float64, bool, error) {
	return 0, false, nil
}

func (Null) EstimateMarketRent(context.Context, models.Unit) (float64, bool, error) {
	return 0, false, nil
}

func (Null) ScoreDefaultRisk(context.Context, models.Lease) (float64, bool, error) {
	return 0, false, nil
}
