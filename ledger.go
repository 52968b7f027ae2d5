package expenses

import (
	"fmt"
	"slices"
	"sort"

	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

// SortKey selects the field a report is ordered by.
type SortKey int

const (
	// ByID orders expenses by their identifier. This is the default.
	ByID SortKey = iota
	// ByDate orders expenses chronologically.
	ByDate
	// ByAmount orders expenses by amount.
	ByAmount
)

func (k SortKey) String() string {
	switch k {
	case ByID:
		return "id"
	case ByDate:
		return "date"
	case ByAmount:
		return "amount"
	default:
		return "unknown"
	}
}

// ParseSortKey parses a string into a SortKey. The empty string means the
// default key (id).
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "", "id":
		return ByID, nil
	case "date":
		return ByDate, nil
	case "amount":
		return ByAmount, nil
	default:
		return 0, fmt.Errorf("unknown sort key: %q", s)
	}
}

// Ledger represents the full collection of expense records held by one store
// file. It is loaded wholesale, mutated in memory, and written back wholesale.
type Ledger struct {
	expenses []Expense
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{expenses: make([]Expense, 0)}
}

// Append adds an expense to the ledger. The caller is responsible for having
// assigned a free id, usually the one returned by NextID.
func (l *Ledger) Append(e Expense) { l.expenses = append(l.expenses, e) }

// Len returns the number of expenses in the ledger.
func (l *Ledger) Len() int { return len(l.expenses) }

// Expenses returns a copy of the records, in store order.
func (l *Ledger) Expenses() []Expense { return slices.Clone(l.expenses) }

// NextID returns the smallest positive integer not used as an id by any
// record in the ledger. It is recomputed before every insertion, so gaps left
// by never-assigned ids are reused. It never mutates the ledger.
func (l *Ledger) NextID() int {
	used := make(map[int]bool, len(l.expenses))
	for _, e := range l.expenses {
		used[e.ID] = true
	}
	id := 1
	for used[id] {
		id++
	}
	return id
}

// SortedBy returns the expenses ordered by the given key. The sort is stable:
// records with equal keys keep their store order, ascending or descending
// alike. Dates compare chronologically, never on their textual form.
func (l *Ledger) SortedBy(key SortKey, descending bool) []Expense {
	sorted := slices.Clone(l.expenses)
	var cmp func(a, b Expense) int
	switch key {
	case ByDate:
		cmp = func(a, b Expense) int { return a.Date.Compare(b.Date) }
	case ByAmount:
		cmp = func(a, b Expense) int { return a.Amount.Cmp(b.Amount) }
	default:
		cmp = func(a, b Expense) int { return a.ID - b.ID }
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return cmp(sorted[i], sorted[j]) > 0
		}
		return cmp(sorted[i], sorted[j]) < 0
	})
	return sorted
}

// Total returns the exact sum of all expense amounts, zero for an empty
// ledger.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Update carries the optional new values for an edit. A nil field leaves the
// current value unchanged; a non-nil field is validated like a new record, so
// a supplied zero amount or blank description is an error, not a no-op.
type Update struct {
	Date        *date.Date
	Amount      *decimal.Decimal
	Description *string
}

// isEmpty reports whether no field is supplied at all.
func (u Update) isEmpty() bool {
	return u.Date == nil && u.Amount == nil && u.Description == nil
}

// Edit modifies in place the record with the given id.
//
// It fails with ErrNothingToChange before even looking up the id when the
// update is empty, with a NotFoundError when no record carries the id, and
// with the record validation errors when a supplied field is invalid. On any
// failure the ledger is left untouched.
func (l *Ledger) Edit(id int, u Update) error {
	if u.isEmpty() {
		return ErrNothingToChange
	}
	at := -1
	for i, e := range l.expenses {
		if e.ID == id {
			at = i
			break
		}
	}
	if at < 0 {
		return &NotFoundError{ID: id}
	}

	// Merge and run the merged record through the single validation path.
	merged := l.expenses[at]
	if u.Date != nil {
		merged.Date = *u.Date
	}
	if u.Amount != nil {
		merged.Amount = *u.Amount
	}
	if u.Description != nil {
		merged.Description = *u.Description
	}
	validated, err := NewExpense(merged.ID, merged.Date, merged.Amount, merged.Description)
	if err != nil {
		return err
	}
	l.expenses[at] = validated
	return nil
}
