package features

// MTTR is mean time to repair: total hours spent repairing over tickets
// closed. Undefined when no tickets closed.
func MTTR(totalRepairHours float64, ticketsClosed int) (float64, bool) {
	if ticketsClosed <= 0 {
		return 0, false
	}
	return totalRepairHours / float64(ticketsClosed), true
}

// OpexPerUnit is monthly operating expense per unit. Undefined for a
// non-positive unit count.
func OpexPerUnit(totalOpexMonthly float64, unitCount int) (float64, bool) {
	if unitCount <= 0 {
		return 0, false
	}
	return totalOpexMonthly / float64(unitCount), true
}
