package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestSanitizeFallsBackToCheckWhenIllegal(t *testing.T) {
	t.Parallel()
	c := &DecisionContext{Legal: []Action{Check, Fold}}
	got := Sanitize(c, Decision{Action: Call})
	assert.Equal(t, Decision{Action: Check}, got)
}

func TestSanitizeFallsBackToFirstLegalWhenNoCheckOrCall(t *testing.T) {
	t.Parallel()
	c := &DecisionContext{Legal: []Action{Fold}}
	got := Sanitize(c, Decision{Action: Bet, Amount: 50})
	assert.Equal(t, Decision{Action: Fold}, got)
}

func TestSanitizeClampsRaiseToLegalWindow(t *testing.T) {
	t.Parallel()
	c := &DecisionContext{
		Legal:      []Action{RaiseTo, Call, Fold},
		MinRaiseTo: intPtr(20),
		MaxRaiseTo: intPtr(100),
	}

	tooLow := Sanitize(c, Decision{Action: RaiseTo, Amount: 5})
	assert.Equal(t, Decision{Action: RaiseTo, Amount: 20}, tooLow)

	tooHigh := Sanitize(c, Decision{Action: RaiseTo, Amount: 500})
	assert.Equal(t, Decision{Action: RaiseTo, Amount: 100}, tooHigh)

	withinRange := Sanitize(c, Decision{Action: RaiseTo, Amount: 40})
	assert.Equal(t, Decision{Action: RaiseTo, Amount: 40}, withinRange)
}

func TestSanitizeDefaultsZeroRaiseAmount(t *testing.T) {
	t.Parallel()
	c := &DecisionContext{
		Legal:             []Action{RaiseTo, Fold},
		CallAmount:        10,
		MinRaiseIncrement: 20,
	}
	got := Sanitize(c, Decision{Action: RaiseTo})
	assert.Equal(t, Decision{Action: RaiseTo, Amount: 30}, got)
}

func TestSanitizeIsIdempotent(t *testing.T) {
	t.Parallel()
	c := &DecisionContext{
		Legal:      []Action{RaiseTo, Call, Fold},
		MinRaiseTo: intPtr(20),
		MaxRaiseTo: intPtr(100),
	}
	once := Sanitize(c, Decision{Action: RaiseTo, Amount: 40})
	twice := Sanitize(c, once)
	assert.Equal(t, once, twice)
}
