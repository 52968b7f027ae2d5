package expenses

import (
	"fmt"
	"os"
	"path/filepath"
)

// StoreExt is the extension a store file must carry.
const StoreExt = ".db"

// LoadLedger opens a store file and decodes the ledger it holds.
//
// The path must end in StoreExt, checked before any I/O; otherwise it fails
// with ErrUnsupportedFileType. A missing file is reported as-is, so callers
// can test errors.Is(err, fs.ErrNotExist) and decide per command whether an
// absent store means "empty ledger" or a hard failure. A present but empty
// or undecodable file fails with ErrEmptyStore.
func LoadLedger(path string) (*Ledger, error) {
	if filepath.Ext(path) != StoreExt {
		return nil, fmt.Errorf("%q: %w", path, ErrUnsupportedFileType)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("store file %q: %w", path, err)
	}
	return l, nil
}

// SaveLedger writes the whole ledger to the store file, replacing any
// previous content. There is no append and no partial patch. It fails when
// the containing directory does not exist (fs.ErrNotExist, carrying the
// offending path).
func SaveLedger(path string, l *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := EncodeLedger(f, l); err != nil {
		return fmt.Errorf("cannot write store file %q: %w", path, err)
	}
	return nil
}
