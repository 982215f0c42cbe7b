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

type accountCmd struct{}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "show one account with its transaction list" }
func (*accountCmd) Usage() string {
	return `hjb account <id>

  Shows the account's balance and its transactions, most recent first.
`
}

func (*accountCmd) SetFlags(f *flag.FlagSet) {}

func (*accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one account id.")
		return subcommands.ExitUsageError
	}

	app := openApp()
	a, err := app.OpenAccount(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AccountDetail(a, hjembank.Today()))
	return subcommands.ExitSuccess
}
