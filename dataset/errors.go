package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hilldiv"
)

var (
	// ErrUnsupportedFormat is returned for a file extension or format name
	// the package cannot handle.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")

	// ErrEmptyTable is returned when a table has no header or no data rows.
	ErrEmptyTable = fmt.Errorf("dataset: table needs a header row and one data row: %w", hilldiv.ErrShapeMismatch)

	// ErrBadNumber is returned when a numeric table holds a non-numeric cell.
	ErrBadNumber = fmt.Errorf("dataset: cell is not a number: %w", hilldiv.ErrDomain)
)
