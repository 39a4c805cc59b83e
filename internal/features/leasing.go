package features

import "fundus/internal/property/models"

// RentRollTotal sums monthly rent over active leases. 0 for empty input.
func RentRollTotal(leases []models.Lease) float64 {
	var total float64
	for _, l := range leases {
		if l.IsActive() {
			total += l.RentMonthly
		}
	}
	return total
}

// OccupancyRate is active leases over total units, clamped to [0,1] so a
// unit double-leased by overlapping records cannot push the rate past full.
// Undefined for non-positive totalUnits.
func OccupancyRate(leases []models.Lease, totalUnits int) (float64, bool) {
	if totalUnits <= 0 {
		return 0, false
	}
	active := 0
	for _, l := range leases {
		if l.IsActive() {
			active++
		}
	}
	rate := float64(active) / float64(totalUnits)
	if rate > 1 {
		rate = 1
	}
	return rate, true
}

// AvgTimeToLease averages historical days-vacant observations. Undefined
// for empty input.
func AvgTimeToLease(daysVacant []int) (float64, bool) {
	if len(daysVacant) == 0 {
		return 0, false
	}
	sum := 0
	for _, d := range daysVacant {
		sum += d
	}
	return float64(sum) / float64(len(daysVacant)), true
}

// TurnoverRate is ended leases over total units. Undefined for non-positive
// totalUnits.
func TurnoverRate(leasesEnded, totalUnits int) (float64, bool) {
	if totalUnits <= 0 {
		return 0, false
	}
	return float64(leasesEnded) / float64(totalUnits), true
}
