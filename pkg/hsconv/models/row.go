// Package models defines data structures for HS code conversion.
package models

// SourceRow is one parsed line of the tariff spreadsheet.
// Rows arrive in document order; the fold depends on that order.
type SourceRow struct {
	// Level is the outline depth of the row. Nil when the level cell is
	// empty or not parseable as an integer.
	Level *int
	// Code is the raw HS code cell, trimmed. May be empty for heading rows.
	Code string
	// DescVI is the Vietnamese description.
	DescVI string
	// DescEN is the English description.
	DescEN string
}

// Leveled reports whether the row carries a usable outline level.
func (r SourceRow) Leveled() bool {
	return r.Level != nil
}
