package features

// Exposure is one holding's value assigned to a bucket (region, segment,
// vintage).
type Exposure struct {
	Bucket string
	Value  float64
}

// ExposureByBucket aggregates holding values per bucket.
func ExposureByBucket(exposures []Exposure) map[string]float64 {
	agg := make(map[string]float64, len(exposures))
	for _, e := range exposures {
		agg[e.Bucket] += e.Value
	}
	return agg
}

// WeightYield pairs a holding's portfolio weight with its yield.
type WeightYield struct {
	Weight float64
	Yield  float64
}

// WeightedYield is the weight-dot-yield sum. Weights are taken as given;
// normalization is the caller's concern. 0 for an empty portfolio.
func WeightedYield(holdings []WeightYield) float64 {
	var sum float64
	for _, h := range holdings {
		sum += h.Weight * h.Yield
	}
	return sum
}

// RiskParityWeights assigns inverse-variance weights normalized to sum
// to 1. Buckets with non-positive variance get zero weight; with no
// positive-variance bucket every weight is zero.
func RiskParityWeights(variances map[string]float64) map[string]float64 {
	inv := make(map[string]float64, len(variances))
	var total float64
	for k, v := range variances {
		if v > 0 {
			inv[k] = 1 / v
			total += inv[k]
		} else {
			inv[k] = 0
		}
	}
	weights := make(map[string]float64, len(inv))
	for k, w := range inv {
		if total == 0 {
			weights[k] = 0
		} else {
			weights[k] = w / total
		}
	}
	return weights
}
