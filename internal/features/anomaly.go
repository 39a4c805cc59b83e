package features

// AreaSanityFlag flags a unit whose net lettable area exceeds its
// building's built-up area beyond the tolerance, which cannot physically
// hold.
func AreaSanityFlag(nlaM2, buaM2, toleranceM2 float64) bool {
	return nlaM2 > buaM2+toleranceM2
}

// OccupancyVsUsageFlag flags a unit claimed occupied whose average energy
// draw is below the threshold a lived-in unit would show.
func OccupancyVsUsageFlag(occupied bool, avgKWhPerDay, minKWhThreshold float64) bool {
	return occupied && avgKWhPerDay < minKWhThreshold
}
