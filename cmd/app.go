// Package cmd implements the CLI application driving the hjembank demo. It
// is the stand-in for the app's view layer: every screen of the mock bank
// has a command, and `session` runs the whole thing interactively.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/oyvinge/hjembank"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&accountsCmd{}, "bank")
	c.Register(&accountCmd{}, "bank")
	c.Register(&payCmd{}, "bank")
	c.Register(&goalsCmd{}, "bank")
	c.Register(&setBalanceCmd{}, "admin")

	c.Register(&sessionCmd{}, "demo")
	c.Register(&topicCmd{}, "demo")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateFile = flag.String("state", "", "Path to the account state file (defaults to $HJEMBANK_STATE, then "+hjembank.StateKey+")")

// StatePath resolves where the account blob lives: the -state flag wins,
// then HJEMBANK_STATE (a .env file is honored), then the well-known name in
// the working directory.
func StatePath() string {
	if *stateFile != "" {
		return *stateFile
	}
	_ = godotenv.Load() // a missing .env is the normal case
	if p := os.Getenv("HJEMBANK_STATE"); p != "" {
		return p
	}
	return hjembank.StateKey
}

// openApp builds an authenticated single-shot App over the state file.
// Non-interactive commands never show the staged feedback prompt.
func openApp() *hjembank.App {
	return hjembank.NewApp(hjembank.Config{
		InitialView:   hjembank.ViewHome,
		FeedbackDelay: -1,
	}, hjembank.FileStore{Path: StatePath()})
}
