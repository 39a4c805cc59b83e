package features

// AvgSatisfaction averages survey scores. Undefined for empty input.
func AvgSatisfaction(scores []float64) (float64, bool) {
	if len(scores) == 0 {
		return 0, false
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores)), true
}

// AmenityUtilization is booked slots over available slots. Undefined for a
// non-positive total.
func AmenityUtilization(usedSlots, totalSlots int) (float64, bool) {
	if totalSlots <= 0 {
		return 0, false
	}
	return float64(usedSlots) / float64(totalSlots), true
}

// CohortChurnRate is ended leases over cohort size. Undefined for a
// non-positive cohort.
func CohortChurnRate(endedInCohort, cohortSize int) (float64, bool) {
	if cohortSize <= 0 {
		return 0, false
	}
	return float64(endedInCohort) / float64(cohortSize), true
}
