package expenses

import (
	"errors"
	"fmt"
	"strings"
)

// The closed set of failure kinds returned by this package. The CLI renders
// them into messages and exit codes; callers must test with errors.Is or
// errors.As, never by matching message text.
var (
	// ErrZeroAmount reports an expense amount equal to zero.
	ErrZeroAmount = errors.New("the expense amount cannot be zero")
	// ErrNegativeAmount reports an expense amount below zero.
	ErrNegativeAmount = errors.New("the expense amount cannot be negative")
	// ErrBlankDescription reports a missing or whitespace-only description.
	ErrBlankDescription = errors.New("missing description for the expense")
	// ErrNothingToChange reports an edit with no field supplied.
	ErrNothingToChange = errors.New("no values have been passed")
	// ErrEmptyStore reports a store file that exists but holds no decodable
	// ledger (a zero-length file, typically).
	ErrEmptyStore = errors.New("no data has been entered yet")
	// ErrUnsupportedFileType reports a path without the expected extension.
	ErrUnsupportedFileType = errors.New("missing extension for file or unsupported file type")
	// ErrMissingExtension reports an export path with no extension at all.
	ErrMissingExtension = errors.New("missing extension for file")
	// ErrEmptyImport reports an import file with no data rows.
	ErrEmptyImport = errors.New("missing file content")
)

// NotFoundError reports an expense id that does not exist in the ledger.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("id %d# not exists in the store", e.ID)
}

// MissingColumnsError reports an import header that lacks the expected columns.
type MissingColumnsError struct {
	Header []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("invalid headers %q, want an amount and a description column", strings.Join(e.Header, ","))
}
