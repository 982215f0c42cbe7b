// Package renderer turns core snapshots into markdown for display. It holds
// no state and never mutates the ledger: everything it receives is a copy.
package renderer

import (
	"fmt"
	"strings"

	"github.com/oyvinge/hjembank"
)

// Overview renders the accounts overview: total balance on top, one line
// per account in display order.
func Overview(accounts []hjembank.Account, total hjembank.Money) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Hjem\n\n")
	fmt.Fprintf(&b, "Disponibelt: **%s**\n\n", total.Display())
	fmt.Fprintf(&b, "| Konto | Kontonummer | Saldo |\n")
	fmt.Fprintf(&b, "|---|---|---:|\n")
	for _, a := range accounts {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", a.Name, a.Number, a.Balance.String())
	}
	return b.String()
}

// AccountDetail renders one account with its transaction list. Dates are
// labelled relative to ref ("I dag", "I går", "18.01").
func AccountDetail(a hjembank.Account, ref hjembank.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Name)
	fmt.Fprintf(&b, "%s\n\n", a.Number)
	fmt.Fprintf(&b, "Saldo: **%s**\n\n", a.Balance.Display())
	if len(a.Entries) == 0 {
		fmt.Fprintf(&b, "Ingen transaksjoner.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "| Dato | | Beløp | |\n")
	fmt.Fprintf(&b, "|---|---|---:|---|\n")
	for _, e := range a.Entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			e.On.Label(ref), e.Counterparty, e.Amount.SignedString(), reservedTag(e))
	}
	return b.String()
}

func reservedTag(e hjembank.Entry) string {
	if e.Reserved {
		return "Reservert"
	}
	return ""
}

// Receipt renders the payment-success view for a completed transfer.
func Receipt(res hjembank.TransferResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Betaling utført\n\n")
	paid := res.From.Entries[0]
	fmt.Fprintf(&b, "%s til %s\n\n", paid.Amount.Neg().Display(), paid.Counterparty)
	if paid.Memo != "" {
		fmt.Fprintf(&b, "Melding: %s\n\n", paid.Memo)
	}
	fmt.Fprintf(&b, "Ny saldo %s: **%s**\n", res.From.Name, res.From.Balance.String())
	if res.To != nil {
		fmt.Fprintf(&b, "Ny saldo %s: **%s**\n", res.To.Name, res.To.Balance.String())
	}
	return b.String()
}

// Goals renders the savings view with one progress line per goal.
func Goals(progress []hjembank.GoalProgress) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sparing\n\n")
	for _, p := range progress {
		fmt.Fprintf(&b, "- %s: %s %s\n", p.Goal.Name, p.String(), bar(p.Ratio()))
	}
	return b.String()
}

// bar draws a ten-segment progress bar.
func bar(ratio float64) string {
	const segments = 10
	filled := int(ratio * segments)
	return "`[" + strings.Repeat("#", filled) + strings.Repeat(".", segments-filled) + "]`"
}

// Tabs renders the bottom navigation, marking the highlighted tab.
func Tabs(tabs []hjembank.ViewID, active hjembank.ViewID, ok bool) string {
	labels := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if ok && tab == active {
			labels = append(labels, "**["+string(tab)+"]**")
			continue
		}
		labels = append(labels, string(tab))
	}
	return strings.Join(labels, " · ")
}
