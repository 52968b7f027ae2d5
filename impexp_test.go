package expenses

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

func TestImportRows_HeaderSynonyms(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"amount and desc", "amount,desc\n149.99,Telephone installment\n50,Small shopping\n"},
		{"value and description", "value,description\n149.99,Telephone installment\n50,Small shopping\n"},
		{"extra column ignored", "category,amount,desc\nhome,149.99,Telephone installment\nfood,50,Small shopping\n"},
		{"case insensitive", "Amount,Desc\n149.99,Telephone installment\n50,Small shopping\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := ImportRows(strings.NewReader(tc.in))
			if err != nil {
				t.Fatalf("ImportRows: %v", err)
			}
			if len(rows) != 2 {
				t.Fatalf("got %d rows, want 2", len(rows))
			}
			if rows[0].Description != "Telephone installment" || !rows[0].Amount.Equal(decimal.RequireFromString("149.99")) {
				t.Errorf("row 0 = %v", rows[0])
			}
			if rows[1].Description != "Small shopping" {
				t.Errorf("row 1 = %v", rows[1])
			}
		})
	}
}

func TestImportRows_Empty(t *testing.T) {
	// A header-only file and a fully empty file are the same failure.
	for _, in := range []string{"", "amount,desc\n"} {
		_, err := ImportRows(strings.NewReader(in))
		if !errors.Is(err, ErrEmptyImport) {
			t.Errorf("ImportRows(%q) error = %v, want ErrEmptyImport", in, err)
		}
	}
}

func TestImportRows_MissingColumns(t *testing.T) {
	testCases := []string{
		"amount,note\n149.99,Telephone installment\n",
		"cost,desc\n149.99,Telephone installment\n",
		"foo,bar\n1,2\n",
	}
	for _, in := range testCases {
		_, err := ImportRows(strings.NewReader(in))
		var mcerr *MissingColumnsError
		if !errors.As(err, &mcerr) {
			t.Errorf("ImportRows(%q) error = %v, want *MissingColumnsError", in, err)
		}
	}
}

func TestImportFile_WrongExtension(t *testing.T) {
	for _, path := range []string{"expenses", "expenses.txt", "expenses.db"} {
		_, err := ImportFile(path)
		if !errors.Is(err, ErrUnsupportedFileType) {
			t.Errorf("ImportFile(%q) error = %v, want ErrUnsupportedFileType", path, err)
		}
	}
}

func TestLedger_AddRows(t *testing.T) {
	day := date.MustParse("13/05/2005")
	ledger := NewLedger()
	ledger.Append(mustExpense(t, 2, "01/01/2020", "10", "existing"))

	rows, err := ImportRows(strings.NewReader("amount,desc\n149.99,First\n50,Second\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := ledger.AddRows(rows, day); err != nil {
		t.Fatalf("AddRows: %v", err)
	}

	got := ledger.Expenses()
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	// fresh ids fill the gaps: 1 then 3
	if got[1].ID != 1 || got[2].ID != 3 {
		t.Errorf("imported ids = %d, %d, want 1, 3", got[1].ID, got[2].ID)
	}
	if got[1].Date != day || got[2].Date != day {
		t.Errorf("imported rows should all carry %s", day)
	}
	if got[1].Description != "First" || got[2].Description != "Second" {
		t.Errorf("imported rows out of order: %v", got)
	}
}

func TestLedger_AddRows_AbortsWholeImport(t *testing.T) {
	day := date.Today()
	ledger := NewLedger()
	ledger.Append(mustExpense(t, 1, "01/01/2020", "10", "existing"))

	rows, err := ImportRows(strings.NewReader("amount,desc\n149.99,Fine\n0,Zero amount\n50,Never reached\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = ledger.AddRows(rows, day)
	if !errors.Is(err, ErrZeroAmount) {
		t.Fatalf("AddRows error = %v, want ErrZeroAmount", err)
	}
	if ledger.Len() != 1 {
		t.Errorf("a failed import must not touch the ledger, got %d records", ledger.Len())
	}
}

func TestExportCSV(t *testing.T) {
	list := []Expense{
		mustExpense(t, 1, "13/11/1954", "149.99", "Telephone installment"),
		mustExpense(t, 2, "02/05/1999", "0.99", "Chewing, gum"),
	}
	var buf bytes.Buffer
	if err := ExportCSV(&buf, list); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "id,date,amount,description" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1,13/11/1954,149.99,Telephone installment" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != `2,02/05/1999,0.99,"Chewing, gum"` {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	// Export and import are not inverses (export carries ids, import does
	// not consume them) but amounts and descriptions survive in order.
	list := []Expense{
		mustExpense(t, 4, "13/11/1954", "149.99", "Telephone installment"),
		mustExpense(t, 7, "02/05/1999", "0.99", "Chewing gum"),
	}
	var buf bytes.Buffer
	if err := ExportCSV(&buf, list); err != nil {
		t.Fatal(err)
	}
	rows, err := ImportRows(&buf)
	if err != nil {
		t.Fatal(err)
	}
	ledger := NewLedger()
	if err := ledger.AddRows(rows, date.Today()); err != nil {
		t.Fatal(err)
	}
	got := ledger.Expenses()
	for i := range list {
		if !got[i].Amount.Equal(list[i].Amount) || got[i].Description != list[i].Description {
			t.Errorf("record %d = %v, want amount %s and %q", i, got[i], list[i].Amount, list[i].Description)
		}
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("reconstructed ids = %d, %d, want fresh ids 1, 2", got[0].ID, got[1].ID)
	}
}

func TestAlternateName(t *testing.T) {
	testCases := []struct {
		path       string
		occurrence int
		want       string
	}{
		{"dir/file.csv", 2, "dir/file(2).csv"},
		{"dir/file.csv", 3, "dir/file(3).csv"},
		{"file.csv", 10, "file(10).csv"},
		{"dir.d/file.csv", 2, "dir.d/file(2).csv"},
	}
	for _, tc := range testCases {
		if got := AlternateName(tc.path, tc.occurrence); got != tc.want {
			t.Errorf("AlternateName(%q, %d) = %q, want %q", tc.path, tc.occurrence, got, tc.want)
		}
	}
}

func TestExportFile_MissingExtension(t *testing.T) {
	_, err := ExportFile(filepath.Join(t.TempDir(), "file"), nil)
	if !errors.Is(err, ErrMissingExtension) {
		t.Errorf("ExportFile(no extension) error = %v, want ErrMissingExtension", err)
	}
}

func TestExportFile_MissingDirectory(t *testing.T) {
	_, err := ExportFile(filepath.Join(t.TempDir(), "no", "such", "file.csv"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ExportFile(missing dir) error = %v, want fs.ErrNotExist", err)
	}
}

func TestExportFile_CollisionProbe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.csv")
	list := []Expense{mustExpense(t, 1, "01/01/2020", "1", "a")}

	// free path: written as-is
	written, err := ExportFile(path, list)
	if err != nil || written != path {
		t.Fatalf("ExportFile = %q, %v, want %q", written, err, path)
	}

	// path taken: lands on file(2).csv
	written, err = ExportFile(path, list)
	if err != nil || written != filepath.Join(dir, "file(2).csv") {
		t.Fatalf("ExportFile = %q, %v, want file(2).csv", written, err)
	}

	// path and file(2).csv taken: the probe still starts at 2 and advances to 3
	written, err = ExportFile(path, list)
	if err != nil || written != filepath.Join(dir, "file(3).csv") {
		t.Fatalf("ExportFile = %q, %v, want file(3).csv", written, err)
	}

	// the original is untouched
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "id,date,amount,description") {
		t.Errorf("original export was modified: %q", data)
	}
}
