package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/oyvinge/hjembank/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: a no-op unless invoked by the completion machinery.
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"accounts":   {},
			"account":    {},
			"pay":        {},
			"goals":      {},
			"setbalance": {},
			"session":    {},
			"topic":      {},
		},
		Flags: map[string]complete.Predictor{
			"state": predict.Files("*.json"),
		},
	}
	completer.Complete("hjb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
