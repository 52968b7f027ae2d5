package expenses

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the JSON form of the ledger
// (the array of records, e.g. "$[0].description" or "$[*].amount").
//
// It returns the decoded JSON value the expression selects. This is the
// machine-readable escape hatch next to the human report.
func (l *Ledger) Query(expr string) (any, error) {
	data, err := json.Marshal(l.expenses)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal ledger: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("cannot decode ledger json: %w", err)
	}
	jval, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return jval, nil
}
