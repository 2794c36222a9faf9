package analysis

import "testing"

func TestPotOdds(t *testing.T) {
	t.Parallel()
	if got := PotOdds(0, 100); got != 0 {
		t.Errorf("PotOdds(0, 100) = %v, want 0", got)
	}
	if got := PotOdds(-5, 100); got != 0 {
		t.Errorf("PotOdds(-5, 100) = %v, want 0", got)
	}
	if got := PotOdds(50, 50); got != 0.5 {
		t.Errorf("PotOdds(50, 50) = %v, want 0.5", got)
	}
	if got := PotOdds(100, 0); got <= 0 || got > 1 {
		t.Errorf("PotOdds(100, 0) = %v, want in (0, 1]", got)
	}
}

func TestImpliedOdds(t *testing.T) {
	t.Parallel()
	if got := ImpliedOdds(0, 100, 1000); got != 0 {
		t.Errorf("ImpliedOdds(0, ...) = %v, want 0", got)
	}
	// call*4 < effective stack: future pot is pot + 4*call.
	if got, want := ImpliedOdds(25, 100, 1000), 25.0/(100+100); got != want {
		t.Errorf("ImpliedOdds = %v, want %v", got, want)
	}
	// call*4 exceeds effective stack: future pot capped at pot + stack.
	if got, want := ImpliedOdds(100, 100, 150), 100.0/(100+150); got != want {
		t.Errorf("ImpliedOdds = %v, want %v", got, want)
	}
}
