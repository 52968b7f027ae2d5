package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	storeFile string
	date      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new expense to the store" }
func (*addCmd) Usage() string {
	return `xp add [-f <store>] [-d <date>] <amount> <description>

  Records one expense. The amount must be positive and the description must
  not be blank. Without -d the expense is dated today.

Usage Examples:
$ xp add 149.99 "Telephone installment"
$ xp add .99 "Chewing gum" -d 13-09-1877
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.storeFile, "f", defaultStoreFile, "Path to the store file")
	f.StringVar(&c.date, "d", "", "Expense date, day first. Defaults to today.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fail(fmt.Errorf("invalid amount %q", args[0]))
	}

	// A missing or empty store is fine here: add creates it.
	ledger, err := loadOrEmpty(c.storeFile)
	if err != nil {
		return fail(err)
	}

	day, err := normalizeDate(f, "d", c.date)
	if err != nil {
		return fail(err)
	}

	e, err := expenses.NewExpense(ledger.NextID(), day, amount, args[1])
	if err != nil {
		return fail(err)
	}
	ledger.Append(e)

	return saveLedger(c.storeFile, ledger)
}
