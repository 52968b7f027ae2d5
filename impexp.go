package expenses

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export format.
// It is a plain comma-separated UTF-8 text file with a header row, distinct
// from the store format.

// CSVExt is the only interchange extension currently supported.
const CSVExt = ".csv"

// Row is one unvalidated imported row: an amount and a description straight
// out of the interchange file. A Row only becomes a record by going through
// NewExpense, the same validation path as manual entry.
type Row struct {
	Amount      decimal.Decimal
	Description string
}

// header synonyms accepted on import. Different producers of the format
// disagreed on the column names, accept both.
var (
	amountColumns      = []string{"amount", "value"}
	descriptionColumns = []string{"description", "desc"}
)

// ImportRows reads the interchange format from 'r'.
//
// The first row is a header and must contain an amount column ("amount" or
// "value") and a description column ("description" or "desc"), otherwise it
// fails with a MissingColumnsError. A file with zero data rows, header-only
// or fully empty, fails with ErrEmptyImport.
func ImportRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyImport
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}

	amountAt, descriptionAt := -1, -1
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if slices.Contains(amountColumns, name) {
			amountAt = i
		}
		if slices.Contains(descriptionColumns, name) {
			descriptionAt = i
		}
	}
	if amountAt < 0 || descriptionAt < 0 {
		return nil, &MissingColumnsError{Header: header}
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read line %d: %w", line, err)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(record[amountAt]))
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q on line %d: %w", record[amountAt], line, err)
		}
		rows = append(rows, Row{Amount: amount, Description: record[descriptionAt]})
	}
	if len(rows) == 0 {
		return nil, ErrEmptyImport
	}
	return rows, nil
}

// ImportFile reads the interchange file at path. The path must end in CSVExt,
// checked before any I/O.
func ImportFile(path string) ([]Row, error) {
	if filepath.Ext(path) != CSVExt {
		return nil, fmt.Errorf("%q: %w", path, ErrUnsupportedFileType)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ImportRows(f)
}

// AddRows validates every row, assigns each a fresh id, dates them all with
// 'day', and appends them to the ledger in file order.
//
// One invalid row aborts the whole import: the ledger is modified only when
// every row passed validation.
func (l *Ledger) AddRows(rows []Row, day date.Date) error {
	staged := &Ledger{expenses: slices.Clone(l.expenses)}
	for i, row := range rows {
		e, err := NewExpense(staged.NextID(), day, row.Amount, row.Description)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		staged.Append(e)
	}
	l.expenses = staged.expenses
	return nil
}

// ExportCSV writes the expenses to 'w' in the interchange format: a header
// row "id,date,amount,description" then one row per record, amounts as plain
// decimals.
func ExportCSV(w io.Writer, expenses []Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "amount", "description"}); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for _, e := range expenses {
		record := []string{fmt.Sprint(e.ID), e.Date.String(), e.Amount.String(), e.Description}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write expense %d#: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AlternateName inserts an occurrence number before the path extension:
// AlternateName("dir/file.csv", 2) is "dir/file(2).csv".
func AlternateName(path string, occurrence int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s(%d)%s", strings.TrimSuffix(path, ext), occurrence, ext)
}

// ExportFile writes the expenses to the interchange file at path and returns
// the path actually written.
//
// The path must carry an extension, otherwise it fails with
// ErrMissingExtension before any I/O. An existing file is never overwritten:
// the export probes "file(2).ext", "file(3).ext", ... strictly in increasing
// order, re-checking existence at every step, and writes to the first free
// candidate. A missing directory fails with fs.ErrNotExist.
func ExportFile(path string, expenses []Expense) (string, error) {
	if filepath.Ext(path) == "" {
		return "", fmt.Errorf("%q: %w", path, ErrMissingExtension)
	}
	target := path
	for occurrence := 2; ; occurrence++ {
		f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			target = AlternateName(path, occurrence)
			continue
		}
		if err != nil {
			return "", err
		}
		defer f.Close()
		if err := ExportCSV(f, expenses); err != nil {
			return "", fmt.Errorf("cannot export to %q: %w", target, err)
		}
		return target, nil
	}
}
