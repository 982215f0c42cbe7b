// Package hjembank implements the core of a mock home-banking interface: an
// account ledger with exact decimal balances, a view navigator with a
// back-navigable history, the payment flow gluing the two together, and a
// best-effort single-blob persistence of the account state.
//
// The package is the "model" side of the demo: it owns every balance
// mutation and every navigation decision, and hands the view layer (the cmd
// and renderer packages, or any other frontend) plain snapshots to display.
// Balances are fictitious and no real money moves.
package hjembank
