package decision

// Sanitize implements spec.md §4.8.5: if the proposed action is illegal,
// fall back to CHECK, else CALL, else the first legal action. RAISE_TO
// amounts are defaulted and clamped to the legal range. Sanitize is
// idempotent: sanitising an already-sanitised decision returns it unchanged.
func Sanitize(c *DecisionContext, d Decision) Decision {
	action := d.Action
	if !c.IsLegal(action) {
		switch {
		case c.IsLegal(Check):
			action = Check
		case c.IsLegal(Call):
			action = Call
		case len(c.Legal) > 0:
			action = c.Legal[0]
		}
	}

	if action != RaiseTo {
		return Decision{Action: action}
	}

	amount := d.Amount
	if amount == 0 {
		switch {
		case c.MinRaiseTo != nil:
			amount = *c.MinRaiseTo
		default:
			amount = c.CallAmount + c.MinRaiseIncrement
		}
	}
	if c.MinRaiseTo != nil && amount < *c.MinRaiseTo {
		amount = *c.MinRaiseTo
	}
	if c.MaxRaiseTo != nil && amount > *c.MaxRaiseTo {
		amount = *c.MaxRaiseTo
	}
	return Decision{Action: RaiseTo, Amount: amount}
}
