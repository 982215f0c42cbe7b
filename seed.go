package hjembank

import (
	"time"

	"github.com/google/uuid"
)

// SeedLedger returns the built-in demo accounts used whenever no persisted
// state exists. Entry dates are anchored to the current day so the overview
// opens with a fresh "I dag" / "I går" at the top.
func SeedLedger() *Ledger {
	today := Today()
	january := NewDate(today.Year(), time.January, 17)

	l := NewLedger()
	l.Add(Account{
		ID:      "21208",
		Name:    "Visakort bulder",
		Number:  "3610.71.65864",
		Balance: M(21208),
		Spent:   M(7601),
		Entries: []Entry{
			{ID: uuid.NewString(), Counterparty: "EasyPark", On: today, Amount: M(-74), Reserved: true, Category: CategoryParking},
			{ID: uuid.NewString(), Counterparty: "Til Sparekonto BB", On: today.Add(-1), Amount: M(-2000), Category: CategoryTransfer},
			{ID: uuid.NewString(), Counterparty: "Til Sparekonto BB", On: today.Add(-1), Amount: M(-1200), Category: CategoryTransfer},
			{ID: uuid.NewString(), Counterparty: "Ruter", On: january.Add(1), Amount: M(-42), Category: CategoryTransit},
			{ID: uuid.NewString(), Counterparty: "Matbutikk", On: january, Amount: M(-450), Category: CategoryGroceries},
		},
	})
	l.Add(Account{
		ID:      "1",
		Name:    "Konto 2",
		Number:  "1234.56.78901",
		Balance: M(1),
		Spent:   M(1),
		Entries: []Entry{
			{ID: uuid.NewString(), Counterparty: "Renteinntekt", On: NewDate(today.Year()-1, time.December, 31), Amount: M(1), Category: CategoryInterest},
		},
	})
	return l
}

// SeedGoals returns the built-in savings goals shown by the savings view.
func SeedGoals() []SavingsGoal {
	return []SavingsGoal{
		{Name: "Sparemål", Account: "1", Target: M(550000)},
	}
}
