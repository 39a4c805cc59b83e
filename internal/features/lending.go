package features

// LTV is loan balance over property value. Undefined for non-positive value.
func LTV(loanBalance, value float64) (float64, bool) {
	if value <= 0 {
		return 0, false
	}
	return loanBalance / value, true
}

// CLTV is the combined balance of all liens over property value.
// Undefined for non-positive value.
func CLTV(totalLiensBalance, value float64) (float64, bool) {
	if value <= 0 {
		return 0, false
	}
	return totalLiensBalance / value, true
}

// DSCR is NOI over annual debt service. Undefined for a zero denominator.
func DSCR(noiAnnual, annualDebtService float64) (float64, bool) {
	if annualDebtService == 0 {
		return 0, false
	}
	return noiAnnual / annualDebtService, true
}

// DTI is monthly debt obligations over monthly gross income. Undefined for
// non-positive income.
func DTI(monthlyDebtObligations, monthlyGrossIncome float64) (float64, bool) {
	if monthlyGrossIncome <= 0 {
		return 0, false
	}
	return monthlyDebtObligations / monthlyGrossIncome, true
}

// ResidualIncome is what remains of monthly income after non-debt expenses
// and debt obligations. Total over all reals; may be negative.
func ResidualIncome(monthlyIncome, monthlyExpensesExDebt, monthlyDebt float64) float64 {
	return monthlyIncome - (monthlyExpensesExDebt + monthlyDebt)
}
