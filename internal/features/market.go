package features

import (
	"slices"

	"fundus/pkg/geo"
)

// Median of the observations. Undefined for empty input.
func Median(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}

// NeighborhoodMedianRent is the median of comparable asking rents.
func NeighborhoodMedianRent(rents []float64) (float64, bool) {
	return Median(rents)
}

// SupplyCount counts competing development sites within radiusKm of the
// subject, great-circle distance.
func SupplyCount(subject geo.Point, sites []geo.Point, radiusKm float64) int {
	n := 0
	for _, s := range sites {
		if geo.DistanceKm(subject, s) <= radiusKm {
			n++
		}
	}
	return n
}
