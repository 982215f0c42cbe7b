package hjembank

import "slices"

// Entry categories, used by the view layer to pick an icon. Informational
// only; the ledger never branches on them.
const (
	CategoryTransfer  = "savings"
	CategoryParking   = "local_parking"
	CategoryTransit   = "directions_bus"
	CategoryGroceries = "shopping_cart"
	CategoryInterest  = "trending_up"
)

// Account is a single account record owned by the ledger.
//
// Balance is mutated only through ledger operations. Number is the
// display-only account number ("3610.71.65864"); the ledger key is ID.
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Number  string  `json:"number"`
	Balance Money   `json:"balance"`
	Spent   Money   `json:"spent"`
	Entries []Entry `json:"entries"`
}

// Entry is one line of an account's transaction log, most-recent-first.
type Entry struct {
	ID           string `json:"id"`
	Counterparty string `json:"counterparty"`
	On           Date   `json:"on"`
	Amount       Money  `json:"amount"`
	Reserved     bool   `json:"reserved"` // provisionally held, not settled; cosmetic
	Category     string `json:"category"`
	Memo         string `json:"memo"`
}

// MarshalJSON implements the json.Marshaler interface for Account.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("number", a.Number)
	w.Append("balance", a.Balance)
	w.Optional("spent", a.Spent)
	w.Append("entries", a.Entries)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Entry.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("counterparty", e.Counterparty)
	w.Append("on", e.On)
	w.Append("amount", e.Amount)
	w.Optional("reserved", e.Reserved)
	w.Optional("category", e.Category)
	w.Optional("memo", e.Memo)
	return w.MarshalJSON()
}

// snapshot returns a copy safe to hand out: the entry log is cloned so the
// caller can never reach the ledger's internal slice.
func (a *Account) snapshot() Account {
	cp := *a
	cp.Entries = slices.Clone(a.Entries)
	return cp
}

// prepend inserts an entry at the front of the log, keeping most-recent-first order.
func (a *Account) prepend(e Entry) {
	a.Entries = slices.Insert(a.Entries, 0, e)
}
