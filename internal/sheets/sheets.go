// Package sheets provides the tabular backing store for guest and settings
// records. The production implementation talks to the Google Sheets API; the
// services only see the Store interface.
package sheets

import (
	"context"
	"errors"
)

// Store is the minimal tabular surface the record stores need: column-span
// reads, trailing appends, cell-range overwrites and sheet bootstrap.
type Store interface {
	// ReadColumns reads all rows in a column span like "A:H" or "B:B".
	ReadColumns(ctx context.Context, sheet, cols string) ([][]string, error)
	// Append appends rows after the last row of the given column span.
	Append(ctx context.Context, sheet, cols string, rows [][]interface{}) error
	// Update overwrites a cell or small rectangle, e.g. "C5" or "C5:D5".
	Update(ctx context.Context, sheet, cellRange string, rows [][]interface{}) error
	SheetExists(ctx context.Context, sheet string) (bool, error)
	CreateSheet(ctx context.Context, sheet string) error
}

// ErrNotConfigured is returned when the Sheets credentials are missing from
// the environment. Fatal to any operation attempted while unconfigured.
var ErrNotConfigured = errors.New("Missing Google Sheets API credentials in environment variables")
