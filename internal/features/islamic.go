package features

import (
	dErrors "fundus/pkg/domain-errors"
)

// MurabahaEqualInstallments builds a cost-plus sale schedule: the total
// price principal*(1+profitRate) split into termMonths equal installments.
// The markup is a pre-agreed profit, not interest. Fails for a
// non-positive term; a schedule with no installments has no meaning.
func MurabahaEqualInstallments(principal, profitRate float64, termMonths int) ([]float64, error) {
	if termMonths <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "murabaha term must be a positive number of months")
	}
	total := principal * (1 + profitRate)
	installment := total / float64(termMonths)
	schedule := make([]float64, termMonths)
	for i := range schedule {
		schedule[i] = installment
	}
	return schedule, nil
}

// IjaraMonthlyRent is the lease-based financing proxy rent: the asset cost
// at the annual profit rate, spread monthly.
func IjaraMonthlyRent(assetCost, annualProfitRate float64) float64 {
	return assetCost * annualProfitRate / 12
}
