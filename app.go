package hjembank

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// DefaultFeedbackDelay is the simulated processing latency between the
// payment receipt appearing and the feedback prompt.
const DefaultFeedbackDelay = 1500 * time.Millisecond

// Config selects the explicit choices the prototype left ambiguous.
type Config struct {
	// InitialView is the view shown at session start. Empty means the login
	// view; a caller modeling an already-authenticated session passes
	// ViewHome.
	InitialView ViewID

	// Tabs are the top-level navigation destinations. Empty means DefaultTabs.
	Tabs []ViewID

	// FeedbackDelay is the staged-feedback latency. Zero means
	// DefaultFeedbackDelay; negative disables the prompt entirely.
	FeedbackDelay time.Duration

	// OnFeedback, if set, is called when the staged feedback prompt fires.
	// It runs on the timer's goroutine.
	OnFeedback func()
}

// App is the composition root: one ledger, one navigator, one store, the
// in-flight payment draft and the savings goals. It is the surface the view
// layer drives, one method per UI command.
//
// An App is an explicit, constructible instance; there is no ambient global
// state, so tests can run as many independent instances as they like.
type App struct {
	Ledger *Ledger
	Nav    *Navigator
	Goals  []SavingsGoal

	store Store
	cfg   Config

	draft  *PaymentDraft
	opened string // id of the account the detail view shows

	authenticated bool

	// feedback state is the one thing touched from the timer's goroutine.
	mu            sync.Mutex
	feedback      *time.Timer
	feedbackShown bool
}

// NewApp loads persisted accounts from the store (seeding defaults when the
// blob is absent or corrupt) and starts a session on the configured initial
// view.
func NewApp(cfg Config, store Store) *App {
	if cfg.InitialView == "" {
		cfg.InitialView = ViewLogin
	}
	return &App{
		Ledger:        LoadLedger(store),
		Nav:           NewNavigator(cfg.InitialView, cfg.Tabs...),
		Goals:         SeedGoals(),
		store:         store,
		cfg:           cfg,
		authenticated: cfg.InitialView != ViewLogin,
	}
}

// persist writes the account blob to the store, best effort: a failure is
// logged and never rolls back the in-memory mutation that triggered it.
func (app *App) persist() {
	blob, err := EncodeAccounts(app.Ledger)
	if err != nil {
		log.Printf("warning: could not encode accounts: %v", err)
		return
	}
	if err := app.store.Save(blob); err != nil {
		log.Printf("warning: could not persist accounts: %v", err)
	}
}

// Authenticated reports whether the session is logged in.
func (app *App) Authenticated() bool { return app.authenticated }

// Login clears navigation history and shows the home view. Any in-flight
// payment draft or pending feedback from a previous session is dropped.
func (app *App) Login() {
	app.authenticated = true
	app.resetFlow()
	app.Nav.Reset(ViewHome)
}

// Logout clears navigation history and returns to the login view.
func (app *App) Logout() {
	app.authenticated = false
	app.resetFlow()
	app.Nav.Reset(ViewLogin)
}

// SelectTab switches to a top-level tab, dropping the history stack.
func (app *App) SelectTab(v ViewID) {
	app.cancelFeedback()
	app.Nav.SwitchTab(v)
}

// GoBack pops the navigation history, falling back to home when empty.
func (app *App) GoBack() {
	app.cancelFeedback()
	app.Nav.GoBack()
}

// OpenAccount shows the detail view for an account. Unknown ids are
// reported to the caller for display and do not navigate.
func (app *App) OpenAccount(id string) (Account, error) {
	a, ok := app.Ledger.Account(id)
	if !ok {
		return Account{}, fmt.Errorf("konto %q: %w", id, ErrUnknownAccount)
	}
	app.cancelFeedback()
	app.opened = id
	app.Nav.NavigateTo(ViewAccount)
	return a, nil
}

// OpenedAccount returns the account the detail view currently shows.
func (app *App) OpenedAccount() (Account, bool) {
	if app.opened == "" {
		return Account{}, false
	}
	return app.Ledger.Account(app.opened)
}

// StartPayment begins a fresh payment flow and shows the payment view. The
// source is pre-filled from the opened account when there is one, otherwise
// from the first account in the overview.
func (app *App) StartPayment() PaymentDraft {
	from := app.opened
	if from == "" {
		for a := range app.Ledger.All() {
			from = a.ID
			break
		}
	}
	app.cancelFeedback()
	app.draft = &PaymentDraft{From: from, On: Today()}
	app.Nav.NavigateTo(ViewPayment)
	return *app.draft
}

// Draft returns a copy of the in-flight payment draft, if any.
func (app *App) Draft() (PaymentDraft, bool) {
	if app.draft == nil {
		return PaymentDraft{}, false
	}
	return *app.draft, true
}

// SetPaymentDestination sets the draft's destination account or payee id.
func (app *App) SetPaymentDestination(id string) error {
	if app.draft == nil {
		return ErrNoDraft
	}
	app.draft.To = id
	return nil
}

// SetPaymentMessage sets the draft's free-text message.
func (app *App) SetPaymentMessage(msg string) error {
	if app.draft == nil {
		return ErrNoDraft
	}
	app.draft.Message = msg
	return nil
}

// SetPaymentDate sets the draft's payment date.
func (app *App) SetPaymentDate(on Date) error {
	if app.draft == nil {
		return ErrNoDraft
	}
	app.draft.On = on
	return nil
}

// SubmitPayment parses the amount, executes the transfer described by the
// draft, persists the result and shows the receipt view. The staged
// feedback prompt is scheduled as a cancellable timer: navigating away
// before it fires cancels it.
//
// On a validation error nothing changes: no balances move, the draft stays
// editable and the view stays put.
func (app *App) SubmitPayment(amount string) (TransferResult, error) {
	if app.draft == nil {
		return TransferResult{}, ErrNoDraft
	}
	m, err := ParseAmount(amount)
	if err != nil {
		return TransferResult{}, err
	}
	res, err := app.Ledger.Transfer(app.draft.From, app.draft.To, m, app.draft.On, app.draft.Message)
	if err != nil {
		return TransferResult{}, err
	}
	app.persist()
	app.draft = nil // consumed
	app.Nav.NavigateTo(ViewPaySuccess)
	app.scheduleFeedback()
	return res, nil
}

// CloseReceipt dismisses the receipt view and returns home, without pushing
// the receipt onto the history. A pending feedback prompt is dropped: it
// belongs to the receipt and must not catch up with the user elsewhere.
func (app *App) CloseReceipt() {
	app.cancelFeedback()
	app.Nav.changeView(ViewHome)
}

// AdminSetBalance applies the maintenance balance override, persists and
// navigates back. Negative balances are allowed on this path.
func (app *App) AdminSetBalance(id string, balance Money) error {
	if err := app.Ledger.SetBalance(id, balance); err != nil {
		return err
	}
	app.persist()
	app.GoBack()
	return nil
}

// resetFlow drops session-scoped transient state: draft, opened account,
// pending feedback.
func (app *App) resetFlow() {
	app.draft = nil
	app.opened = ""
	app.cancelFeedback()
}

func (app *App) scheduleFeedback() {
	delay := app.cfg.FeedbackDelay
	if delay < 0 {
		return
	}
	if delay == 0 {
		delay = DefaultFeedbackDelay
	}
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.feedback != nil {
		app.feedback.Stop()
	}
	app.feedback = time.AfterFunc(delay, func() {
		app.mu.Lock()
		app.feedbackShown = true
		app.feedback = nil
		hook := app.cfg.OnFeedback
		app.mu.Unlock()
		if hook != nil {
			hook()
		}
	})
}

func (app *App) cancelFeedback() {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.feedback != nil {
		app.feedback.Stop()
		app.feedback = nil
	}
	app.feedbackShown = false
}

// FeedbackVisible reports whether the staged feedback prompt is showing.
func (app *App) FeedbackVisible() bool {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.feedbackShown
}

// DismissFeedback hides the feedback prompt.
func (app *App) DismissFeedback() {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.feedbackShown = false
}
