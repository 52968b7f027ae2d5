package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type editCmd struct {
	storeFile   string
	date        string
	amount      string
	description string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing expense" }
func (*editCmd) Usage() string {
	return `xp edit [-f <store>] [-d <date>] [-amount <n>] [-desc <text>] <id>

  Changes fields of the expense with the given id. At least one of -d,
  -amount or -desc is required; an omitted field keeps its value.

Usage Examples:
$ xp edit 5 -amount 1500
$ xp edit 26 -d 5.12.2000 -amount 500 -desc "Some shopping"
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.storeFile, "f", defaultStoreFile, "Path to the store file")
	f.StringVar(&c.date, "d", "", "New date for the expense, day first")
	f.StringVar(&c.amount, "amount", "", "New amount for the expense")
	f.StringVar(&c.description, "desc", "", "New description for the expense")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fail(fmt.Errorf("invalid id %q", args[0]))
	}

	// Build the update from the flags that were actually supplied. A field
	// set to an empty or zero value is an error down the line, not a no-op.
	var u expenses.Update
	if flagWasSet(f, "d") {
		day, err := normalizeDate(f, "d", c.date)
		if err != nil {
			return fail(err)
		}
		u.Date = &day
	}
	if flagWasSet(f, "amount") {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			return fail(fmt.Errorf("invalid amount %q", c.amount))
		}
		u.Amount = &amount
	}
	if flagWasSet(f, "desc") {
		u.Description = &c.description
	}
	if u.Date == nil && u.Amount == nil && u.Description == nil {
		return fail(expenses.ErrNothingToChange)
	}

	ledger, err := expenses.LoadLedger(c.storeFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fail(fmt.Errorf("there is no such path: %s", c.storeFile))
	case errors.Is(err, expenses.ErrEmptyStore):
		return fail(errors.New("no data has been entered yet, nothing to edit"))
	case err != nil:
		return fail(err)
	}

	if err := ledger.Edit(id, u); err != nil {
		return fail(err)
	}

	return saveLedger(c.storeFile, ledger)
}
