package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

// --- Import Command ---

type importCmd struct {
	storeFile string
	date      string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import expenses from a csv file" }
func (*importCmd) Usage() string {
	return `xp import [-f <store>] [-d <date>] <file.csv>

  Appends the rows of a csv file to the ledger. The file needs a header with
  an amount column ("amount" or "value") and a description column
  ("description" or "desc"). All rows get the -d date (today when omitted).
  One invalid row aborts the whole import.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.storeFile, "f", defaultStoreFile, "Path to the store file")
	f.StringVar(&c.date, "d", "", "Date assigned to the imported expenses, day first. Defaults to today.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	rows, err := expenses.ImportFile(args[0])
	if errors.Is(err, fs.ErrNotExist) {
		return fail(errors.New("file not exist"))
	}
	if err != nil {
		return fail(err)
	}

	// A missing or empty store is fine here: import creates it.
	ledger, err := loadOrEmpty(c.storeFile)
	if err != nil {
		return fail(err)
	}

	day, err := normalizeDate(f, "d", c.date)
	if err != nil {
		return fail(err)
	}

	if err := ledger.AddRows(rows, day); err != nil {
		return fail(err)
	}

	return saveLedger(c.storeFile, ledger)
}

// --- Export Command ---

type exportCmd struct {
	storeFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the expense store to a csv file" }
func (*exportCmd) Usage() string {
	return `xp export [-f <store>] <file.csv>

  Writes the ledger to a csv file with columns id,date,amount,description.
  An existing file is never overwritten: the export lands in file(2).csv,
  file(3).csv, and so on.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.storeFile, "f", defaultStoreFile, "Path to the store file")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	target := args[0]
	if ext := filepath.Ext(target); ext != "" && ext != expenses.CSVExt {
		return fail(fmt.Errorf("%q: %w", target, expenses.ErrUnsupportedFileType))
	}

	ledger, err := expenses.LoadLedger(c.storeFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fail(fmt.Errorf("there is no such path: %s", c.storeFile))
	case errors.Is(err, expenses.ErrEmptyStore):
		return fail(errors.New("no data has been entered yet, nothing to export"))
	case err != nil:
		return fail(err)
	}

	written, err := expenses.ExportFile(target, ledger.Expenses())
	if errors.Is(err, fs.ErrNotExist) {
		return fail(fmt.Errorf("there is no such path: %s", target))
	}
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Saved to: %s.\n", written)
	return subcommands.ExitSuccess
}
