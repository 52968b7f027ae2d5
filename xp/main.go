package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/expenses/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the xp command line for shell completion. It must run
// before flag parsing: in completion mode it answers and exits.
func completion() {
	stores := predict.Files("*.db")

	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"add":    {Flags: map[string]complete.Predictor{"f": stores, "d": predict.Nothing}},
			"report": {Flags: map[string]complete.Predictor{"f": stores, "sort": predict.Set{"id", "date", "amount"}}},
			"edit":   {Flags: map[string]complete.Predictor{"f": stores, "d": predict.Nothing, "amount": predict.Nothing, "desc": predict.Nothing}},
			"import": {Flags: map[string]complete.Predictor{"f": stores, "d": predict.Nothing}, Args: predict.Files("*.csv")},
			"export": {Flags: map[string]complete.Predictor{"f": stores}, Args: predict.Files("*.csv")},
			"query":  {Flags: map[string]complete.Predictor{"f": stores}},
			"topic":  {Args: predict.Set{"readme", "commands", "store", "interchange", "*"}},
		},
	}
	c.Complete("xp")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
