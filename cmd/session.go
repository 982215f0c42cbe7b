package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/oyvinge/hjembank"
	"github.com/oyvinge/hjembank/renderer"
)

type sessionCmd struct {
	authenticated bool
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run an interactive banking session" }
func (*sessionCmd) Usage() string {
	return `hjb session [-home]

  Drives the whole mock app interactively: log in, browse accounts, drill
  into details, compose and submit payments, go back. One line per action:

    login | logout          start or end the session
    tab hjem|betaling|sparing   switch top-level tab
    open <id>               open an account's detail view
    pay                     start a payment from the open account
    to <id> | msg <text> | date <yyyy-mm-dd>   edit the draft
    send <beløp>            submit the payment
    back                    navigate back
    ok                      dismiss the feedback prompt / close the receipt
    quit
`
}

func (p *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.authenticated, "home", false, "Start already logged in, on the home view.")
}

func (p *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initial := hjembank.ViewLogin
	if p.authenticated {
		initial = hjembank.ViewHome
	}
	app := hjembank.NewApp(hjembank.Config{
		InitialView: initial,
		OnFeedback:  func() { fmt.Println("\nHvordan var betalingsopplevelsen? (ok for å lukke)") },
	}, hjembank.FileStore{Path: StatePath()})

	scanner := bufio.NewScanner(os.Stdin)
	render(app)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return subcommands.ExitSuccess
		}
		verb, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		if bankingVerb(verb) && !app.Authenticated() {
			fmt.Fprintln(os.Stderr, "logg inn først")
			continue
		}

		switch verb {
		case "", "view":
			// just re-render below
		case "quit", "exit":
			return subcommands.ExitSuccess
		case "login":
			app.Login()
		case "logout":
			app.Logout()
		case "tab":
			app.SelectTab(hjembank.ViewID(arg))
		case "open":
			if _, err := app.OpenAccount(arg); err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
		case "pay":
			app.StartPayment()
		case "to":
			fail(app.SetPaymentDestination(arg))
		case "msg":
			fail(app.SetPaymentMessage(arg))
		case "date":
			on, err := hjembank.ParseDate(arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fail(app.SetPaymentDate(on))
		case "send":
			if _, err := app.SubmitPayment(arg); err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
		case "back":
			app.GoBack()
		case "ok":
			if app.FeedbackVisible() {
				app.DismissFeedback()
			} else if app.Nav.Active() == hjembank.ViewPaySuccess {
				app.CloseReceipt()
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n", verb)
			continue
		}
		render(app)
	}
}

// bankingVerb reports whether a session command drives the views that sit
// behind the login screen.
func bankingVerb(verb string) bool {
	switch verb {
	case "tab", "open", "pay", "to", "msg", "date", "send":
		return true
	}
	return false
}

func fail(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// render shows the active view the way the mock app's screen would.
func render(app *hjembank.App) {
	switch app.Nav.Active() {
	case hjembank.ViewLogin:
		printMarkdown("# Logg inn\n\nSkriv `login` for å fortsette.\n")
	case hjembank.ViewHome:
		var accounts []hjembank.Account
		for a := range app.Ledger.All() {
			accounts = append(accounts, a)
		}
		printMarkdown(renderer.Overview(accounts, app.Ledger.TotalBalance()))
	case hjembank.ViewAccount:
		if a, ok := app.OpenedAccount(); ok {
			printMarkdown(renderer.AccountDetail(a, hjembank.Today()))
		}
	case hjembank.ViewPayment:
		if d, ok := app.Draft(); ok {
			md := fmt.Sprintf("# Ny betaling\n\nFra: %s\n\nTil: %s\n\nDato: %s\n\nMelding: %s\n",
				d.FromDisplay(app.Ledger), d.ToDisplay(app.Ledger), d.On.Label(hjembank.Today()), d.Message)
			printMarkdown(md)
		}
	case hjembank.ViewPaySuccess:
		printMarkdown("# Betaling utført\n\nSkriv `ok` for å gå hjem.\n")
	case hjembank.ViewSavings:
		var progress []hjembank.GoalProgress
		for _, g := range app.Goals {
			progress = append(progress, g.Progress(app.Ledger))
		}
		printMarkdown(renderer.Goals(progress))
	}

	tab, ok := app.Nav.ActiveTab()
	fmt.Println(renderer.Tabs(hjembank.DefaultTabs, tab, ok))
}
