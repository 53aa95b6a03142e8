package hsconv

import (
	"errors"
	"fmt"
)

// ErrNoSheets indicates the workbook contains no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrNoCodes indicates a source yielded no valid HS codes.
var ErrNoCodes = errors.New("no valid hs codes found")

// ConvertError wraps a failure in one stage of a conversion run.
type ConvertError struct {
	Stage string // "extract", "convert", "embed", "write"
	Path  string
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
