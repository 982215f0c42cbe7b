package hjembank

import (
	"slices"
	"testing"
)

func TestNavigator_roundTrip(t *testing.T) {
	n := NewNavigator(ViewHome)

	n.NavigateTo(ViewAccount)
	if got := n.Active(); got != ViewAccount {
		t.Fatalf("Active() = %s, want %s", got, ViewAccount)
	}

	n.GoBack()
	if got := n.Active(); got != ViewHome {
		t.Errorf("Active() after GoBack = %s, want %s", got, ViewHome)
	}
	if h := n.History(); len(h) != 0 {
		t.Errorf("history after round trip = %v, want empty", h)
	}
}

func TestNavigator_navigateToSameViewIsANoOp(t *testing.T) {
	n := NewNavigator(ViewHome)
	n.NavigateTo(ViewHome)
	if h := n.History(); len(h) != 0 {
		t.Errorf("navigating to the active view pushed history: %v", h)
	}
}

func TestNavigator_goBackOnEmptyStackFallsBackHome(t *testing.T) {
	n := NewNavigator(ViewSavings)
	n.GoBack()
	if got := n.Active(); got != ViewHome {
		t.Errorf("Active() = %s, want fallback %s", got, ViewHome)
	}
	if h := n.History(); len(h) != 0 {
		t.Errorf("fallback pushed history: %v", h)
	}
	// And again: still no error, still home.
	n.GoBack()
	if got := n.Active(); got != ViewHome {
		t.Errorf("Active() = %s, want %s", got, ViewHome)
	}
}

func TestNavigator_switchTabClearsHistory(t *testing.T) {
	n := NewNavigator(ViewHome)
	n.NavigateTo(ViewAccount)
	n.NavigateTo(ViewPayment)

	n.SwitchTab(ViewSavings)
	if got := n.Active(); got != ViewSavings {
		t.Fatalf("Active() = %s, want %s", got, ViewSavings)
	}
	if h := n.History(); len(h) != 0 {
		t.Errorf("history after tab switch = %v, want empty", h)
	}

	// Back from a fresh tab degrades to home, not to the old stack.
	n.GoBack()
	if got := n.Active(); got != ViewHome {
		t.Errorf("Active() = %s, want %s", got, ViewHome)
	}
}

func TestNavigator_ActiveTab(t *testing.T) {
	testCases := []struct {
		name    string
		drive   func(n *Navigator)
		wantTab ViewID
		wantOK  bool
	}{
		{
			name:    "active view is a tab",
			drive:   func(n *Navigator) {},
			wantTab: ViewHome,
			wantOK:  true,
		},
		{
			name:    "detail view highlights the tab it was reached from",
			drive:   func(n *Navigator) { n.NavigateTo(ViewAccount) },
			wantTab: ViewHome,
			wantOK:  true,
		},
		{
			name: "deep stack scans most recent first",
			drive: func(n *Navigator) {
				n.SwitchTab(ViewSavings)
				n.NavigateTo(ViewAccount)
			},
			wantTab: ViewSavings,
			wantOK:  true,
		},
		{
			name: "no tab ancestry highlights nothing",
			drive: func(n *Navigator) {
				n.Reset(ViewLogin)
			},
			wantOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := NewNavigator(ViewHome)
			tc.drive(n)
			tab, ok := n.ActiveTab()
			if ok != tc.wantOK || tab != tc.wantTab {
				t.Errorf("ActiveTab() = (%q, %v), want (%q, %v)", tab, ok, tc.wantTab, tc.wantOK)
			}
		})
	}
}

func TestNavigator_historyIsACopy(t *testing.T) {
	n := NewNavigator(ViewHome)
	n.NavigateTo(ViewAccount)
	h := n.History()
	h[0] = ViewLogin
	if got := n.History(); !slices.Equal(got, []ViewID{ViewHome}) {
		t.Errorf("history mutated through its copy: %v", got)
	}
}
