// Package parser implements the row-folding and code-derivation logic for
// HS code extraction.
package parser

import (
	"regexp"
	"strings"

	"github.com/hstrade/hsconv/pkg/hsconv/models"
)

// minCodeLen is the shortest raw code that yields derived code fields.
// Shorter codes are still emitted as entries but carry no hierarchy and no
// parent codes.
const minCodeLen = 4

// normalizedLen is the canonical HS code length (chapter+heading+subheading).
const normalizedLen = 6

var sectionPattern = regexp.MustCompile(`Chương\s+(\d+)`)

// NormalizeCode normalizes a raw HS code to its 6-character form: 4-digit
// codes are padded with trailing zeros, longer codes are truncated. Returns
// the empty string when the code is too short or its digit prefix is not
// numeric.
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if len(code) < minCodeLen {
		return ""
	}
	n := normalizedLen
	if len(code) < n {
		n = len(code)
	}
	for _, r := range code[:n] {
		if r < '0' || r > '9' {
			return ""
		}
	}
	if len(code) >= normalizedLen {
		return code[:normalizedLen]
	}
	return code + strings.Repeat("0", normalizedLen-len(code))
}

// BuildHierarchy derives the chapter/heading/subheading hierarchy of a code.
// Returns nil when the code cannot be normalized.
func BuildHierarchy(code string) *models.Hierarchy {
	full := NormalizeCode(code)
	if full == "" {
		return nil
	}
	return &models.Hierarchy{
		Chapter:    full[:2],
		Heading:    full[:4],
		Subheading: full[:6],
		FullCode:   full,
	}
}

// ExtractParentCodes derives the ancestor code prefixes of a code.
// Returns nil when the code cannot be normalized.
func ExtractParentCodes(code string) *models.ParentCodes {
	full := NormalizeCode(code)
	if full == "" {
		return nil
	}
	return &models.ParentCodes{
		Chapter:    full[:2],
		Heading:    full[:4],
		Subheading: full[:6],
	}
}

// ExtractSectionNumber pulls the section number out of a description via the
// labeled chapter marker ("Chương N"). Returns the empty string when the
// marker is absent.
func ExtractSectionNumber(desc string) string {
	m := sectionPattern.FindStringSubmatch(desc)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExtractChapterNumber returns the 2-digit chapter prefix of a code, or the
// empty string when the code does not start with two digits.
func ExtractChapterNumber(code string) string {
	code = strings.TrimSpace(code)
	if len(code) < 2 {
		return ""
	}
	for _, r := range code[:2] {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return code[:2]
}

// isCodeRow reports whether a raw code qualifies a row for entry emission:
// non-empty and digit-leading.
func isCodeRow(code string) bool {
	return code != "" && code[0] >= '0' && code[0] <= '9'
}
