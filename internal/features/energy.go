package features

import (
	"slices"
	"time"

	"fundus/internal/property/models"
)

// KWhPerM2Day estimates daily energy intensity from cumulative meter
// readings: the average of successive non-negative deltas between
// consecutive in-window readings, divided by the unit's net area. Negative
// deltas indicate a meter rollover or reset and are excluded rather than
// dragging the average negative.
//
// Readings are windowed to the trailing windowDays before asOf and ordered
// by timestamp regardless of storage order. Undefined when areaM2 <= 0,
// fewer than two readings fall in the window, or every in-window delta is
// negative.
func KWhPerM2Day(readings []models.MeterReading, areaM2 float64, windowDays int, asOf time.Time) (float64, bool) {
	if areaM2 <= 0 {
		return 0, false
	}
	cutoff := asOf.AddDate(0, 0, -windowDays)

	window := make([]models.MeterReading, 0, len(readings))
	for _, r := range readings {
		if !r.Timestamp.Before(cutoff) && !r.Timestamp.After(asOf) {
			window = append(window, r)
		}
	}
	if len(window) < 2 {
		return 0, false
	}
	slices.SortFunc(window, func(a, b models.MeterReading) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	var sum float64
	count := 0
	for i := 1; i < len(window); i++ {
		delta := window[i].Value - window[i-1].Value
		if delta < 0 {
			continue
		}
		sum += delta
		count++
	}
	if count == 0 {
		return 0, false
	}
	return (sum / float64(count)) / areaM2, true
}

// CarbonIntensity is a scope-2 proxy: annual energy intensity times the
// grid emission factor, in kgCO2e per m2 per year.
func CarbonIntensity(kwhPerM2Year, gridFactorKgCO2ePerKWh float64) float64 {
	return kwhPerM2Year * gridFactorKgCO2ePerKWh
}

// WaterIntensity is annual water consumption over net area. Undefined for
// non-positive area.
func WaterIntensity(m3PerYear, nlaM2 float64) (float64, bool) {
	if nlaM2 <= 0 {
		return 0, false
	}
	return m3PerYear / nlaM2, true
}

// HazardDistanceScore scores proximity to a hazard on [0,1]: 1 at or
// beyond the threshold distance, linear below it. Undefined for a
// non-positive threshold.
func HazardDistanceScore(distanceM, thresholdM float64) (float64, bool) {
	if thresholdM <= 0 {
		return 0, false
	}
	if distanceM >= thresholdM {
		return 1, true
	}
	if distanceM < 0 {
		return 0, true
	}
	return distanceM / thresholdM, true
}
