package expenses

import (
	"fmt"
	"strings"

	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

// Expense represents one validated expense record.
//
// An Expense is only ever built through NewExpense, so a ledger holds no
// record with a non-positive amount or a blank description.
type Expense struct {
	ID          int             `json:"id"`
	Date        date.Date       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// NewExpense validates and creates an expense record.
//
// Checks run in a fixed order so the failure is deterministic: zero amount,
// then negative amount, then blank description. A description made only of
// whitespace counts as missing.
func NewExpense(id int, day date.Date, amount decimal.Decimal, description string) (Expense, error) {
	if amount.IsZero() {
		return Expense{}, ErrZeroAmount
	}
	if amount.IsNegative() {
		return Expense{}, ErrNegativeAmount
	}
	if strings.TrimSpace(description) == "" {
		return Expense{}, ErrBlankDescription
	}
	return Expense{ID: id, Date: day, Amount: amount, Description: description}, nil
}

// IsBig reports whether the expense amount meets or exceeds the given
// threshold. The threshold is display configuration, it is never persisted.
func (e Expense) IsBig(threshold decimal.Decimal) bool {
	return e.Amount.GreaterThanOrEqual(threshold)
}

// String returns a compact representation, mostly for debugging.
func (e Expense) String() string {
	return fmt.Sprintf("%d# %s %s %q", e.ID, e.Date, e.Amount, e.Description)
}
