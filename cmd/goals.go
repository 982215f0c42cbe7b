package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/oyvinge/hjembank"
	"github.com/oyvinge/hjembank/renderer"
)

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show savings goals and their progress" }
func (*goalsCmd) Usage() string {
	return `hjb goals

  Shows each savings goal as the linked account's balance against its target.
`
}

func (*goalsCmd) SetFlags(f *flag.FlagSet) {}

func (*goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app := openApp()

	var progress []hjembank.GoalProgress
	for _, g := range app.Goals {
		progress = append(progress, g.Progress(app.Ledger))
	}
	printMarkdown(renderer.Goals(progress))
	return subcommands.ExitSuccess
}
