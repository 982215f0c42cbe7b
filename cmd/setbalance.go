package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oyvinge/hjembank"
)

type setBalanceCmd struct{}

func (*setBalanceCmd) Name() string     { return "setbalance" }
func (*setBalanceCmd) Synopsis() string { return "directly override an account balance (demo reset)" }
func (*setBalanceCmd) Usage() string {
	return `hjb setbalance <id> <beløp>

  Assigns a balance without writing a transaction entry. This maintenance
  path has no lower bound: negative balances are allowed.
`
}

func (*setBalanceCmd) SetFlags(f *flag.FlagSet) {}

func (*setBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected an account id and an amount.")
		return subcommands.ExitUsageError
	}
	balance, err := hjembank.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	app := openApp()
	if err := app.AdminSetBalance(f.Arg(0), balance); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	a, _ := app.Ledger.Account(f.Arg(0))
	fmt.Printf("Saldo oppdatert: %s er nå %s\n", a.Name, a.Balance.Display())
	return subcommands.ExitSuccess
}
