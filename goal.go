package hjembank

// SavingsGoal links an account to a fixed saving target. Progress is the
// linked account's current balance against that target.
type SavingsGoal struct {
	Name    string
	Account string // id of the account whose balance tracks the goal
	Target  Money
}

// GoalProgress is the display state of one goal at a point in time.
type GoalProgress struct {
	Goal  SavingsGoal
	Saved Money
}

// Progress reads the linked account's balance off the ledger. A goal linked
// to an unknown account reports zero saved.
func (g SavingsGoal) Progress(l *Ledger) GoalProgress {
	p := GoalProgress{Goal: g}
	if a, ok := l.Account(g.Account); ok {
		p.Saved = a.Balance
	}
	return p
}

// String renders the savings view line, e.g. "2 001,00 / 550 000,00".
func (p GoalProgress) String() string {
	return p.Saved.String() + " / " + p.Goal.Target.String()
}

// Ratio returns the filled share of the goal, clamped to [0, 1].
func (p GoalProgress) Ratio() float64 {
	if !p.Goal.Target.IsPositive() {
		return 0
	}
	r := p.Saved.Ratio(p.Goal.Target)
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}
