// Package cmd implements the CLI application to manage the expense ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/expenses"
	"github.com/etnz/expenses/date"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the xp tool.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&reportCmd{},
	&editCmd{},
	&importCmd{},
	&exportCmd{},
	&queryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so shared
// defaults can live here as constants.
const (
	defaultStoreFile = "data/budget.db"
	defaultBig       = "500"
	defaultCurrency  = "EUR"
)

// fail prints the error in the uniform CLI form and returns a failure status.
// This is the only place a core failure becomes console output.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "ERROR: %v.\n", err)
	return subcommands.ExitFailure
}

// loadOrEmpty loads the store, treating a missing or empty store file as an
// empty ledger. A path without the store extension is still fatal.
func loadOrEmpty(path string) (*expenses.Ledger, error) {
	l, err := expenses.LoadLedger(path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, expenses.ErrEmptyStore) {
		return expenses.NewLedger(), nil
	}
	return l, err
}

// saveLedger writes the whole ledger back to the store and tells the user
// where it landed.
func saveLedger(path string, l *expenses.Ledger) subcommands.ExitStatus {
	if err := expenses.SaveLedger(path, l); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fail(fmt.Errorf("there is no such path: %s", path))
		}
		return fail(err)
	}
	fmt.Printf("Saved to: %s.\n", path)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// flagWasSet reports whether the named flag was explicitly supplied on the
// command line. Omitted and supplied-but-empty are different things here: an
// omitted date means "today", an empty one goes to the parser and fails.
func flagWasSet(f *flag.FlagSet, name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// normalizeDate returns today when the date flag was omitted, otherwise the
// day-first parse of the supplied value.
func normalizeDate(f *flag.FlagSet, name, value string) (date.Date, error) {
	if !flagWasSet(f, name) {
		return date.Today(), nil
	}
	return date.Parse(value)
}
