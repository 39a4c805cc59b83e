package features

import (
	"iter"
	"time"
)

// CashFlow is one principal payment on a loan schedule.
type CashFlow struct {
	Date      time.Time
	Principal float64
}

const daysPerYear = 365.25

// WeightedAverageLife is the principal-weighted mean time to repayment, in
// years from the earliest scheduled date. Undefined for an empty schedule
// or non-positive total principal.
func WeightedAverageLife(schedule []CashFlow) (float64, bool) {
	if len(schedule) == 0 {
		return 0, false
	}
	t0 := schedule[0].Date
	for _, cf := range schedule[1:] {
		if cf.Date.Before(t0) {
			t0 = cf.Date
		}
	}
	var totalPrincipal, weighted float64
	for _, cf := range schedule {
		years := cf.Date.Sub(t0).Hours() / 24 / daysPerYear
		weighted += years * cf.Principal
		totalPrincipal += cf.Principal
	}
	if totalPrincipal <= 0 {
		return 0, false
	}
	return weighted / totalPrincipal, true
}

// TapeRow is one loan-tape row subject to eligibility QC.
type TapeRow struct {
	LTV               *float64
	RentMonthly       float64
	ValuationDate     *time.Time
	PermitCompletedOn *time.Time
	TitleClean        bool
}

// permitStaleAfterDays bounds how old an occupancy completion may be before
// the row is flagged.
const permitStaleAfterDays = 3650

// TapeQCFlags yields the QC flags raised by each row, keyed by row index.
// The sequence is finite, makes one pass over rows per iteration, and is
// restartable: ranging over it again re-evaluates from the first row.
// Rows raising no flags are skipped.
func TapeQCFlags(rows []TapeRow, asOf time.Time) iter.Seq2[int, []string] {
	staleCutoff := asOf.AddDate(0, 0, -permitStaleAfterDays)
	return func(yield func(int, []string) bool) {
		for i, row := range rows {
			var flags []string
			if row.LTV == nil {
				flags = append(flags, "missing_ltv")
			}
			if row.RentMonthly < 0 {
				flags = append(flags, "negative_rent")
			}
			if row.ValuationDate == nil {
				flags = append(flags, "valuation_missing")
			}
			if row.PermitCompletedOn == nil || row.PermitCompletedOn.Before(staleCutoff) {
				flags = append(flags, "permit_stale")
			}
			if !row.TitleClean {
				flags = append(flags, "title_not_clean")
			}
			if len(flags) == 0 {
				continue
			}
			if !yield(i, flags) {
				return
			}
		}
	}
}
