package features

// SumInsuredFromReplacementCost estimates replacement cost as built-up
// area times a per-square-metre construction cost rate.
func SumInsuredFromReplacementCost(buaM2, costRatePerM2 float64) float64 {
	return buaM2 * costRatePerM2
}

// DeductibleEffectExpectedCost reduces the expected annual claim cost by
// the deductible retained on each claim, capped at the expected per-claim
// amount and floored at zero. With no expected claims, the input cost
// passes through unchanged.
func DeductibleEffectExpectedCost(expectedAnnualClaim, deductible, claimsPerYear float64) float64 {
	if claimsPerYear <= 0 {
		return expectedAnnualClaim
	}
	expectedPerClaim := expectedAnnualClaim / claimsPerYear
	retained := min(deductible, expectedPerClaim) * claimsPerYear
	return max(0, expectedAnnualClaim-retained)
}
