package hjembank

import (
	"errors"
	"testing"
	"time"
)

func newTestApp(t *testing.T, cfg Config) (*App, *MemStore) {
	t.Helper()
	store := &MemStore{}
	return NewApp(cfg, store), store
}

func TestApp_initialViewIsConfigurable(t *testing.T) {
	app, _ := newTestApp(t, Config{})
	if got := app.Nav.Active(); got != ViewLogin {
		t.Errorf("default initial view = %s, want %s", got, ViewLogin)
	}
	if app.Authenticated() {
		t.Error("a session starting at login must not be authenticated")
	}

	app, _ = newTestApp(t, Config{InitialView: ViewHome})
	if got := app.Nav.Active(); got != ViewHome {
		t.Errorf("initial view = %s, want %s", got, ViewHome)
	}
	if !app.Authenticated() {
		t.Error("a session starting at home is an already-authenticated one")
	}
}

func TestApp_loginAndLogoutResetTheSession(t *testing.T) {
	app, _ := newTestApp(t, Config{})

	app.Login()
	if got := app.Nav.Active(); got != ViewHome {
		t.Errorf("view after login = %s, want %s", got, ViewHome)
	}
	if h := app.Nav.History(); len(h) != 0 {
		t.Errorf("history after login = %v, want empty", h)
	}

	// Drill in, then log out: history and flow state are gone.
	if _, err := app.OpenAccount("21208"); err != nil {
		t.Fatal(err)
	}
	app.StartPayment()
	app.Logout()
	if got := app.Nav.Active(); got != ViewLogin {
		t.Errorf("view after logout = %s, want %s", got, ViewLogin)
	}
	if h := app.Nav.History(); len(h) != 0 {
		t.Errorf("history after logout = %v, want empty", h)
	}
	if _, ok := app.Draft(); ok {
		t.Error("payment draft survived logout")
	}
}

func TestApp_paymentFlow(t *testing.T) {
	app, store := newTestApp(t, Config{InitialView: ViewHome, FeedbackDelay: -1})

	if _, err := app.OpenAccount("21208"); err != nil {
		t.Fatal(err)
	}
	draft := app.StartPayment()
	if draft.From != "21208" {
		t.Errorf("draft source = %q, want the opened account", draft.From)
	}
	if got := app.Nav.Active(); got != ViewPayment {
		t.Errorf("view = %s, want %s", got, ViewPayment)
	}

	if err := app.SetPaymentDestination("1"); err != nil {
		t.Fatal(err)
	}
	if err := app.SetPaymentMessage("sparing"); err != nil {
		t.Fatal(err)
	}

	res, err := app.SubmitPayment("2 000")
	if err != nil {
		t.Fatalf("SubmitPayment() failed: %v", err)
	}
	if !res.From.Balance.Equal(M(19208)) || res.To == nil || !res.To.Balance.Equal(M(2001)) {
		t.Errorf("balances = %s / %v, want 19 208,00 / 2 001,00", res.From.Balance, res.To)
	}
	if got := app.Nav.Active(); got != ViewPaySuccess {
		t.Errorf("view = %s, want %s", got, ViewPaySuccess)
	}
	if _, ok := app.Draft(); ok {
		t.Error("draft must be consumed on submission")
	}

	// The mutation was persisted: a fresh app on the same store sees it.
	reloaded := NewApp(Config{InitialView: ViewHome}, store)
	a, _ := reloaded.Ledger.Account("21208")
	if !a.Balance.Equal(M(19208)) {
		t.Errorf("reloaded balance = %s, want 19 208,00", a.Balance)
	}

	app.CloseReceipt()
	if got := app.Nav.Active(); got != ViewHome {
		t.Errorf("view after closing receipt = %s, want %s", got, ViewHome)
	}
}

func TestApp_submitValidationLeavesEverythingInPlace(t *testing.T) {
	app, store := newTestApp(t, Config{InitialView: ViewHome, FeedbackDelay: -1})
	app.StartPayment()
	if err := app.SetPaymentDestination("1"); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{name: "malformed", amount: "mange penger", wantErr: ErrInvalidAmount},
		{name: "zero", amount: "0", wantErr: ErrInvalidAmount},
		{name: "negative", amount: "-50", wantErr: ErrInvalidAmount},
		{name: "over balance", amount: "999 999", wantErr: ErrInsufficientFunds},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := app.SubmitPayment(tc.amount)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("SubmitPayment(%q) error = %v, want %v", tc.amount, err, tc.wantErr)
			}
			if got := app.Nav.Active(); got != ViewPayment {
				t.Errorf("view = %s, want to stay on %s", got, ViewPayment)
			}
			if _, ok := app.Draft(); !ok {
				t.Error("draft must stay editable after a rejected submission")
			}
			if got := app.Ledger.TotalBalance(); !got.Equal(M(21209)) {
				t.Errorf("TotalBalance() = %s, want unchanged", got)
			}
			if _, ok, _ := store.Load(); ok {
				t.Error("nothing must be persisted for a rejected submission")
			}
		})
	}
}

func TestApp_editingWithoutAFlow(t *testing.T) {
	app, _ := newTestApp(t, Config{InitialView: ViewHome})
	if err := app.SetPaymentDestination("1"); !errors.Is(err, ErrNoDraft) {
		t.Errorf("SetPaymentDestination() error = %v, want ErrNoDraft", err)
	}
	if _, err := app.SubmitPayment("100"); !errors.Is(err, ErrNoDraft) {
		t.Errorf("SubmitPayment() error = %v, want ErrNoDraft", err)
	}
}

func TestApp_stagedFeedbackFires(t *testing.T) {
	fired := make(chan struct{}, 1)
	app, _ := newTestApp(t, Config{
		InitialView:   ViewHome,
		FeedbackDelay: time.Millisecond,
		OnFeedback:    func() { fired <- struct{}{} },
	})
	app.StartPayment()
	if err := app.SetPaymentDestination("1"); err != nil {
		t.Fatal(err)
	}
	if _, err := app.SubmitPayment("100"); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("staged feedback never fired")
	}
	if !app.FeedbackVisible() {
		t.Error("FeedbackVisible() = false after the prompt fired")
	}
	app.DismissFeedback()
	if app.FeedbackVisible() {
		t.Error("FeedbackVisible() = true after dismissal")
	}
}

func TestApp_navigatingAwayCancelsStagedFeedback(t *testing.T) {
	fired := make(chan struct{}, 1)
	app, _ := newTestApp(t, Config{
		InitialView:   ViewHome,
		FeedbackDelay: 50 * time.Millisecond,
		OnFeedback:    func() { fired <- struct{}{} },
	})
	app.StartPayment()
	if err := app.SetPaymentDestination("1"); err != nil {
		t.Fatal(err)
	}
	if _, err := app.SubmitPayment("100"); err != nil {
		t.Fatal(err)
	}

	// The user leaves the receipt before the prompt fires: it must not
	// catch up with them later.
	app.SelectTab(ViewSavings)

	select {
	case <-fired:
		t.Fatal("feedback fired after the user navigated away")
	case <-time.After(200 * time.Millisecond):
	}
	if app.FeedbackVisible() {
		t.Error("FeedbackVisible() = true after cancellation")
	}
}

func TestApp_closingReceiptCancelsStagedFeedback(t *testing.T) {
	fired := make(chan struct{}, 1)
	app, _ := newTestApp(t, Config{
		InitialView:   ViewHome,
		FeedbackDelay: 50 * time.Millisecond,
		OnFeedback:    func() { fired <- struct{}{} },
	})
	app.StartPayment()
	if err := app.SetPaymentDestination("1"); err != nil {
		t.Fatal(err)
	}
	if _, err := app.SubmitPayment("100"); err != nil {
		t.Fatal(err)
	}

	// Closing the receipt is a navigation like any other: the prompt tied
	// to it must not show up later on the home view.
	app.CloseReceipt()

	select {
	case <-fired:
		t.Fatal("feedback fired after the user closed the receipt")
	case <-time.After(200 * time.Millisecond):
	}
	if app.FeedbackVisible() {
		t.Error("FeedbackVisible() = true after closing the receipt")
	}
}

func TestApp_adminSetBalancePersistsAndGoesBack(t *testing.T) {
	app, store := newTestApp(t, Config{InitialView: ViewHome})
	if _, err := app.OpenAccount("21208"); err != nil {
		t.Fatal(err)
	}

	if err := app.AdminSetBalance("21208", M(-500)); err != nil {
		t.Fatalf("AdminSetBalance() failed: %v", err)
	}
	a, _ := app.Ledger.Account("21208")
	if !a.Balance.Equal(M(-500)) {
		t.Errorf("balance = %s, want -500,00", a.Balance)
	}
	if got := app.Nav.Active(); got != ViewHome {
		t.Errorf("view after admin override = %s, want back at %s", got, ViewHome)
	}
	if _, ok, _ := store.Load(); !ok {
		t.Error("admin override must persist the account blob")
	}

	if err := app.AdminSetBalance("404", M(1)); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("AdminSetBalance(unknown) error = %v, want ErrUnknownAccount", err)
	}
}

func TestApp_goalProgressTracksLedger(t *testing.T) {
	app, _ := newTestApp(t, Config{InitialView: ViewHome, FeedbackDelay: -1})
	app.StartPayment()
	if err := app.SetPaymentDestination("1"); err != nil {
		t.Fatal(err)
	}
	if _, err := app.SubmitPayment("2000"); err != nil {
		t.Fatal(err)
	}

	p := app.Goals[0].Progress(app.Ledger)
	if !p.Saved.Equal(M(2001)) {
		t.Errorf("goal saved = %s, want 2 001,00", p.Saved)
	}
	if got := p.String(); got != "2 001,00 / 550 000,00" {
		t.Errorf("progress line = %q", got)
	}
	if r := p.Ratio(); r <= 0 || r >= 0.01 {
		t.Errorf("ratio = %f, want a small positive share", r)
	}
}
