package hjembank

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the authoritative owner of account balances and transaction
// logs; it is the only component permitted to mutate a balance.
//
// Accounts keep the order in which they were added, which is the order the
// overview displays them in.
type Ledger struct {
	accounts map[string]*Account
	order    []string // account ids, in display order
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// Add registers an account under its id. Adding an id twice replaces the
// record but keeps its position in the display order.
func (l *Ledger) Add(a Account) {
	if _, exists := l.accounts[a.ID]; !exists {
		l.order = append(l.order, a.ID)
	}
	cp := a.snapshot()
	l.accounts[a.ID] = &cp
}

// Account returns a snapshot of the account with this id. Unknown ids report
// ok=false rather than an error: external payees are a legitimate miss.
func (l *Ledger) Account(id string) (Account, bool) {
	a, ok := l.accounts[id]
	if !ok {
		return Account{}, false
	}
	return a.snapshot(), true
}

// All iterates over snapshots of all accounts in display order.
func (l *Ledger) All() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, id := range l.order {
			if !yield(l.accounts[id].snapshot()) {
				return
			}
		}
	}
}

// Len returns the number of accounts in the ledger.
func (l *Ledger) Len() int { return len(l.order) }

// TotalBalance returns the sum over all current account balances. It is
// always recomputed in full; the total is never maintained incrementally.
func (l *Ledger) TotalBalance() Money {
	total := M(decimal.Zero)
	for _, id := range l.order {
		total = total.Add(l.accounts[id].Balance)
	}
	return total
}

// TransferResult reports the updated state of both sides of a transfer.
// To is nil when the destination is an external payee.
type TransferResult struct {
	From Account
	To   *Account
}

// Transfer moves amount from one account to another on the given date.
//
// The source must exist and cover the amount. The destination may be
// unknown: a transfer to an external payee only debits the source. Both
// sides get an entry at the front of their log (negative on the source,
// mirrored positive on an internal destination). On any validation error
// no state changes at all.
func (l *Ledger) Transfer(fromID, toID string, amount Money, on Date, memo string) (TransferResult, error) {
	if !amount.IsPositive() {
		return TransferResult{}, ErrInvalidAmount
	}
	if fromID == toID {
		return TransferResult{}, ErrSameAccount
	}
	from, ok := l.accounts[fromID]
	if !ok {
		return TransferResult{}, fmt.Errorf("fra-konto %q: %w", fromID, ErrUnknownAccount)
	}
	if from.Balance.LessThan(amount) {
		return TransferResult{}, ErrInsufficientFunds
	}
	if on.IsZero() {
		on = Today()
	}

	to, internal := l.accounts[toID]

	// Counterparty labels: the destination's display name when we know it,
	// the raw destination id for an external payee.
	counterparty := toID
	if internal {
		counterparty = to.Name
	}

	from.Balance = from.Balance.Sub(amount)
	from.prepend(Entry{
		ID:           uuid.NewString(),
		Counterparty: counterparty,
		On:           on,
		Amount:       amount.Neg(),
		Category:     CategoryTransfer,
		Memo:         memo,
	})

	result := TransferResult{From: from.snapshot()}
	if internal {
		to.Balance = to.Balance.Add(amount)
		to.prepend(Entry{
			ID:           uuid.NewString(),
			Counterparty: "Fra " + from.Name,
			On:           on,
			Amount:       amount,
			Category:     CategoryTransfer,
			Memo:         memo,
		})
		cp := to.snapshot()
		result.To = &cp
	}
	return result, nil
}

// SetBalance directly assigns a balance, bypassing the transaction log and
// the non-negative rule enforced by Transfer. Maintenance affordance only.
func (l *Ledger) SetBalance(id string, balance Money) error {
	a, ok := l.accounts[id]
	if !ok {
		return fmt.Errorf("konto %q: %w", id, ErrUnknownAccount)
	}
	a.Balance = balance
	return nil
}
