package features

// FAR is gross floor area over lot area. Undefined for a non-positive lot.
func FAR(gfaM2, lotAreaM2 float64) (float64, bool) {
	if lotAreaM2 <= 0 {
		return 0, false
	}
	return gfaM2 / lotAreaM2, true
}

// CoverageRatio is building footprint over lot area. Undefined for a
// non-positive lot.
func CoverageRatio(footprintM2, lotAreaM2 float64) (float64, bool) {
	if lotAreaM2 <= 0 {
		return 0, false
	}
	return footprintM2 / lotAreaM2, true
}

// ParkingRatio is parking spaces per unit. Undefined for a non-positive
// unit count.
func ParkingRatio(spaces, unitCount int) (float64, bool) {
	if unitCount <= 0 {
		return 0, false
	}
	return float64(spaces) / float64(unitCount), true
}
