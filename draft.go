package hjembank

// PaymentDraft is the transient state of a transfer being composed: created
// when the payment flow starts, edited field by field, consumed and
// discarded on submission. Never persisted.
type PaymentDraft struct {
	From    string
	To      string
	Message string
	On      Date
}

// Display fields for the payment view, e.g. "Visakort bulder (21 208,00)".
func paymentDisplay(l *Ledger, id string) string {
	a, ok := l.Account(id)
	if !ok {
		return id
	}
	return a.Name + " (" + a.Balance.String() + ")"
}

// FromDisplay returns the source account label for the payment view.
func (d *PaymentDraft) FromDisplay(l *Ledger) string { return paymentDisplay(l, d.From) }

// ToDisplay returns the destination label for the payment view. External
// payees render as their raw id.
func (d *PaymentDraft) ToDisplay(l *Ledger) string { return paymentDisplay(l, d.To) }
