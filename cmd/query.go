package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type queryCmd struct {
	storeFile string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a jsonpath expression against the records" }
func (*queryCmd) Usage() string {
	return `xp query [-f <store>] <jsonpath>

  Evaluates a JSONPath expression against the JSON form of the records and
  prints the result, for scripting on top of the ledger.

Usage Examples:
$ xp query '$[*].description'
$ xp query '$[0].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.storeFile, "f", defaultStoreFile, "Path to the store file")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := expenses.LoadLedger(c.storeFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fail(fmt.Errorf("there is no such path: %s", c.storeFile))
	case errors.Is(err, expenses.ErrEmptyStore):
		return fail(errors.New("no data has been entered yet, nothing to query"))
	case err != nil:
		return fail(err)
	}

	jval, err := ledger.Query(args[0])
	if err != nil {
		return fail(err)
	}
	data, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Println(string(data))
	return subcommands.ExitSuccess
}
