package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/oyvinge/hjembank"
	"github.com/oyvinge/hjembank/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "show the accounts overview and the total balance" }
func (*accountsCmd) Usage() string {
	return `hjb accounts

  Lists every account with its balance, and the total across all of them.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app := openApp()

	var accounts []hjembank.Account
	for a := range app.Ledger.All() {
		accounts = append(accounts, a)
	}
	printMarkdown(renderer.Overview(accounts, app.Ledger.TotalBalance()))
	return subcommands.ExitSuccess
}
