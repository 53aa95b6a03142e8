// Package hsconv converts HS tariff-code reference data between formats.
package hsconv

import "github.com/hstrade/hsconv/pkg/hsconv/parser"

// Options configures Excel extraction behavior.
type Options struct {
	// Sheet is the worksheet to read. When empty or not present in the
	// workbook, the first sheet is used.
	Sheet string
	// StartRow is the 1-based row where tariff data begins.
	// Zero means the default layout's start row.
	StartRow int
	// LevelCol, CodeCol, VICol and ENCol override the default column
	// letters for the level, code and description fields.
	LevelCol string
	CodeCol  string
	VICol    string
	ENCol    string
	// Separator joins ancestor descriptions in the full-description fields.
	// Empty means " | ".
	Separator string
}

// DefaultOptions returns extraction options for the standard tariff
// workbook layout.
func DefaultOptions() Options {
	return Options{}
}

// readSpec resolves the options into a concrete sheet layout.
func (o Options) readSpec() parser.ReadSpec {
	spec := parser.DefaultReadSpec()
	if o.StartRow > 0 {
		spec.StartRow = o.StartRow
	}
	if o.LevelCol != "" {
		spec.LevelCol = o.LevelCol
	}
	if o.CodeCol != "" {
		spec.CodeCol = o.CodeCol
	}
	if o.VICol != "" {
		spec.VICol = o.VICol
	}
	if o.ENCol != "" {
		spec.ENCol = o.ENCol
	}
	return spec
}

// separator returns the configured separator or the default.
func (o Options) separator() string {
	if o.Separator == "" {
		return parser.DefaultSeparator
	}
	return o.Separator
}
