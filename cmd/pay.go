package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oyvinge/hjembank"
	"github.com/oyvinge/hjembank/renderer"
)

type payCmd struct {
	from    string
	to      string
	amount  string
	date    string
	message string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "transfer money between accounts or to an external payee" }
func (*payCmd) Usage() string {
	return `hjb pay -from <id> -to <id> -amount <beløp> [-d <date>] [-m <message>]

  Moves money from one account to a destination. A destination that is not
  one of your accounts is treated as an external payee: only the source is
  debited. Amounts accept the display form, e.g. "2 000,50".
`
}

func (p *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "Source account id. Defaults to the first account.")
	f.StringVar(&p.to, "to", "", "Destination account id or external payee.")
	f.StringVar(&p.amount, "amount", "", "Amount to transfer.")
	f.StringVar(&p.date, "d", "", "Payment date (defaults to today).")
	f.StringVar(&p.message, "m", "", "Free-text message on the payment.")
}

func (p *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.to == "" || p.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -to and -amount are required.")
		return subcommands.ExitUsageError
	}

	app := openApp()
	if p.from != "" {
		if _, err := app.OpenAccount(p.from); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	app.StartPayment()
	if err := app.SetPaymentDestination(p.to); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := app.SetPaymentMessage(p.message); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.date != "" {
		on, err := hjembank.ParseDate(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := app.SetPaymentDate(on); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	res, err := app.SubmitPayment(p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Receipt(res))
	return subcommands.ExitSuccess
}
