package models

// Hierarchy holds the chapter/heading/subheading prefixes of a normalized
// 6-digit HS code.
type Hierarchy struct {
	// Chapter is the 2-digit chapter prefix (XX0000).
	Chapter string `json:"level_1_chapter"`
	// Heading is the 4-digit heading prefix (XXYY00).
	Heading string `json:"level_2_heading"`
	// Subheading is the full 6-digit code (XXYYZZ).
	Subheading string `json:"level_3_subheading"`
	// FullCode is the normalized 6-character code.
	FullCode string `json:"full_code"`
}

// ParentCodes lists the ancestor code prefixes of an HS code.
type ParentCodes struct {
	Chapter    string `json:"chapter"`
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
}

// Entry is one emitted HS code with its reconstructed ancestor context.
// Entries are immutable once created by the fold.
type Entry struct {
	Code   string `json:"code"`
	Level  *int   `json:"level"`
	DescVI string `json:"viDescription"`
	DescEN string `json:"enDescription"`
	// DescVIFull joins the Vietnamese descriptions of all cached ancestor
	// levels, root first.
	DescVIFull string `json:"viDescriptionFull"`
	// DescENFull joins the English descriptions of all cached ancestor
	// levels, root first.
	DescENFull string `json:"enDescriptionFull"`
	// Section is the section number extracted from the Vietnamese
	// description, empty when no marker is present.
	Section string `json:"section,omitempty"`
	// Chapter is the 2-digit chapter prefix of the code.
	Chapter string `json:"chapter,omitempty"`
	// Hierarchy and ParentCodes are nil for codes shorter than 4 digits.
	Hierarchy   *Hierarchy   `json:"hierarchy"`
	ParentCodes *ParentCodes `json:"parentCodes"`
}
