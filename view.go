package hjembank

import "slices"

// ViewID names a single screen. Exactly one view is active at a time.
type ViewID string

const (
	ViewLogin      ViewID = "login"
	ViewHome       ViewID = "hjem"
	ViewAccount    ViewID = "konto"
	ViewPayment    ViewID = "betaling"
	ViewPaySuccess ViewID = "betaling-kvittering"
	ViewSavings    ViewID = "sparing"
)

// DefaultTabs are the top-level navigation destinations, as opposed to
// detail views reached by drilling in.
var DefaultTabs = []ViewID{ViewHome, ViewPayment, ViewSavings}

// Navigator tracks the active view and a back-navigable history,
// independent of the ledger.
type Navigator struct {
	active   ViewID
	history  []ViewID // previously active views, most recent last
	tabs     []ViewID
	fallback ViewID
}

// NewNavigator creates a navigator showing the initial view, with an empty
// history. GoBack on an empty history falls back to the home view.
func NewNavigator(initial ViewID, tabs ...ViewID) *Navigator {
	if len(tabs) == 0 {
		tabs = DefaultTabs
	}
	return &Navigator{active: initial, tabs: tabs, fallback: ViewHome}
}

// Active returns the currently visible view.
func (n *Navigator) Active() ViewID { return n.active }

// History returns a copy of the back stack, oldest first.
func (n *Navigator) History() []ViewID { return slices.Clone(n.history) }

// NavigateTo makes v the active view. The previously active view is pushed
// onto the history stack, unless v is already active.
func (n *Navigator) NavigateTo(v ViewID) {
	if n.active == v {
		return
	}
	n.history = append(n.history, n.active)
	n.active = v
}

// GoBack pops the most recent history entry and makes it active. An empty
// stack degrades to the fallback view; it never errors.
func (n *Navigator) GoBack() {
	if len(n.history) == 0 {
		n.changeView(n.fallback)
		return
	}
	n.active = n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
}

// SwitchTab makes a top-level tab's view active and clears the whole
// history: tabs are not nested under each other.
func (n *Navigator) SwitchTab(v ViewID) {
	n.history = n.history[:0]
	n.active = v
}

// changeView sets the active view without touching history. Escape hatch
// for flows that must not be back-navigable (login, logout, receipts).
func (n *Navigator) changeView(v ViewID) { n.active = v }

// Reset clears the history and activates v, as login and logout do.
func (n *Navigator) Reset(v ViewID) {
	n.history = n.history[:0]
	n.changeView(v)
}

// ActiveTab returns the top-level tab to highlight. The active view wins on
// an exact match; otherwise the history is scanned from most recent to
// oldest for the first entry that is a tab. ok is false when neither
// matches, i.e. the user is deep in a flow with no tab ancestry.
func (n *Navigator) ActiveTab() (ViewID, bool) {
	if slices.Contains(n.tabs, n.active) {
		return n.active, true
	}
	for i := len(n.history) - 1; i >= 0; i-- {
		if slices.Contains(n.tabs, n.history[i]) {
			return n.history[i], true
		}
	}
	return "", false
}
