package expenses

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jledger is the readable version of the store format: a single JSON document
// holding the whole record list. One document per store file, no versioning.
type jledger struct {
	Expenses []Expense `json:"expenses"`
}

// EncodeLedger writes the whole ledger to 'w' as one JSON document. Amounts
// are written as plain decimal numbers.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(jledger{Expenses: l.expenses}); err != nil {
		return fmt.Errorf("cannot encode ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads one whole ledger document from 'r'.
//
// A reader with no content at all fails with ErrEmptyStore, and so does a
// document that cannot be decoded: a store is either absent, whole, or
// worthless, there is no partial read. Records are returned as stored,
// without re-validation.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read store: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyStore
	}
	var j jledger
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("cannot decode store (%v): %w", err, ErrEmptyStore)
	}
	l := NewLedger()
	l.expenses = append(l.expenses, j.Expenses...)
	return l, nil
}
