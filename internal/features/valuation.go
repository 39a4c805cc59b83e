package features

// NOI annualizes the monthly rent roll and subtracts annual operating
// expenses. Pass 0 expenses when none are recorded.
func NOI(rentRollMonthly, opexAnnual float64) float64 {
	return rentRollMonthly*12.0 - opexAnnual
}

// CapRate is NOI over asset value. Undefined for a zero value.
func CapRate(noiAnnual, value float64) (float64, bool) {
	if value == 0 {
		return 0, false
	}
	return noiAnnual / value, true
}

// ValueFromCap inverts CapRate: implied value at an assumed rate.
// Undefined for a zero rate. Negative NOI yields a negative value; the
// sign is not special-cased.
func ValueFromCap(noiAnnual, assumedCapRate float64) (float64, bool) {
	if assumedCapRate == 0 {
		return 0, false
	}
	return noiAnnual / assumedCapRate, true
}

// EquityMultiple is total distributions over total equity invested.
// Undefined for non-positive equity.
func EquityMultiple(totalDistributions, totalEquityInvested float64) (float64, bool) {
	if totalEquityInvested <= 0 {
		return 0, false
	}
	return totalDistributions / totalEquityInvested, true
}

// YieldOnCost is stabilized NOI over total project cost. Undefined for
// non-positive cost.
func YieldOnCost(stabilizedNOIAnnual, totalProjectCost float64) (float64, bool) {
	if totalProjectCost <= 0 {
		return 0, false
	}
	return stabilizedNOIAnnual / totalProjectCost, true
}
