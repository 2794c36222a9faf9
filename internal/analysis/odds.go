package analysis

// PotOdds = call / (pot + call); 0 when call <= 0 (spec.md §4.3).
func PotOdds(call, pot float64) float64 {
	if call <= 0 {
		return 0
	}
	return call / (pot + call)
}

// ImpliedOdds = call / (pot + min(4*call, effectiveStack)); 0 when call <= 0
// (spec.md §4.3).
func ImpliedOdds(call, pot, effectiveStack float64) float64 {
	if call <= 0 {
		return 0
	}
	capped := 4 * call
	if effectiveStack < capped {
		capped = effectiveStack
	}
	return call / (pot + capped)
}
