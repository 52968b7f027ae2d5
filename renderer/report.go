// Package renderer turns ledger data into markdown suitable for terminal
// rendering.
package renderer

import (
	"fmt"
	"strings"

	money "github.com/Rhymond/go-money"
	"github.com/etnz/expenses"
	"github.com/shopspring/decimal"
)

// Options holds the display configuration for a report.
type Options struct {
	Currency     string          // ISO 4217 code used to format amounts.
	BigThreshold decimal.Decimal // Expenses at or above it get the [!] marker.
}

// Report renders the expenses as a markdown table followed by the total.
// Big expenses are marked with "[!]" in their own column; the marker is
// derived at render time, never stored.
func Report(list []expenses.Expense, total decimal.Decimal, opts Options) string {
	var b strings.Builder
	b.WriteString("| ID | Date | Amount | Big | Description |\n")
	b.WriteString("|---:|------|-------:|:---:|-------------|\n")
	for _, e := range list {
		big := ""
		if e.IsBig(opts.BigThreshold) {
			big = "[!]"
		}
		fmt.Fprintf(&b, "| %d# | %s | %s | %s | %s |\n",
			e.ID, e.Date, Amount(e.Amount, opts.Currency), big, e.Description)
	}
	fmt.Fprintf(&b, "\n**Total**: %s\n", Amount(total, opts.Currency))
	return b.String()
}

// Amount formats a decimal amount with the currency's own formatter.
func Amount(d decimal.Decimal, currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := d.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
