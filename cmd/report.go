package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type reportCmd struct {
	storeFile  string
	sort       string
	descending bool
	json       bool
	big        string
	currency   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "view the expense store as a table" }
func (*reportCmd) Usage() string {
	return `xp report [-f <store>] [-sort id|date|amount] [-descending] [-json] [-big <n>] [-currency <code>]

  Prints the ledger as a table with a [!] marker on big expenses and the
  total at the bottom. With -json, prints the raw records instead.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.storeFile, "f", defaultStoreFile, "Path to the store file")
	f.StringVar(&c.sort, "sort", "", "Sort by \"date\" or \"amount\", by default by id")
	f.BoolVar(&c.descending, "descending", false, "Reverse the sort order")
	f.BoolVar(&c.json, "json", false, "Print the records as JSON instead of a table")
	f.StringVar(&c.big, "big", defaultBig, "Amount at or above which an expense is marked big")
	f.StringVar(&c.currency, "currency", defaultCurrency, "Currency code used to format amounts")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := expenses.ParseSortKey(c.sort)
	if err != nil {
		f.Usage()
		return subcommands.ExitUsageError
	}
	big, err := decimal.NewFromString(c.big)
	if err != nil {
		return fail(fmt.Errorf("invalid big threshold %q", c.big))
	}

	ledger, err := expenses.LoadLedger(c.storeFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fail(fmt.Errorf("there is no such path: %s", c.storeFile))
	case errors.Is(err, expenses.ErrEmptyStore):
		return fail(errors.New("no data has been entered yet, nothing to display"))
	case err != nil:
		return fail(err)
	}

	sorted := ledger.SortedBy(key, c.descending)

	if c.json {
		data, err := json.MarshalIndent(sorted, "", "  ")
		if err != nil {
			return fail(err)
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	opts := renderer.Options{Currency: c.currency, BigThreshold: big}
	printMarkdown(renderer.Report(sorted, ledger.Total(), opts))
	return subcommands.ExitSuccess
}
