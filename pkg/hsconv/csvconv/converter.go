// Package csvconv converts HS code CSV files to the JSON record format.
package csvconv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"

	"github.com/hstrade/hsconv/pkg/hsconv/models"
)

// Format identifies a supported CSV column layout.
type Format string

const (
	// FormatBasic expects code, description, chapter, section.
	FormatBasic Format = "basic"
	// FormatExtended adds menu and keywords columns.
	FormatExtended Format = "extended"
	// FormatBilingual adds menu_vi, description_vi and keywords_vi columns.
	FormatBilingual Format = "bilingual"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatBasic:
		return FormatBasic, nil
	case FormatExtended:
		return FormatExtended, nil
	case FormatBilingual:
		return FormatBilingual, nil
	}
	return "", fmt.Errorf("invalid format %q (must be basic, extended, or bilingual)", s)
}

var codePattern = regexp.MustCompile(`^\d{6}$`)

// Converter converts HS code CSV rows to HSCode records.
type Converter struct {
	Format Format
	// Skipped counts rows rejected during the last Convert call.
	Skipped int
}

// NewConverter returns a converter for the given format.
func NewConverter(format Format) *Converter {
	return &Converter{Format: format}
}

// Convert reads a headered CSV stream and returns one HSCode per valid row.
// Invalid rows are skipped with a warning, never fatal.
func (c *Converter) Convert(r io.Reader) ([]models.HSCode, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv has no header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	c.Skipped = 0
	var codes []models.HSCode
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv parse error at line %d: %w", line, err)
		}
		if empty(record) {
			continue
		}
		row := rowView{cols: cols, record: record}
		code, ok := c.convertRow(row)
		if !ok {
			c.Skipped++
			continue
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// rowView reads named fields out of a CSV record.
type rowView struct {
	cols   map[string]int
	record []string
}

func (r rowView) get(name string) string {
	idx, ok := r.cols[name]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

// convertRow maps one CSV row to an HSCode according to the format.
func (c *Converter) convertRow(row rowView) (models.HSCode, bool) {
	code := row.get("code")
	description := row.get("description")
	chapter := row.get("chapter")
	section := row.get("section")

	if code == "" || description == "" || chapter == "" || section == "" {
		log.Printf("skipping row with missing required fields (code=%q)", code)
		return models.HSCode{}, false
	}
	if !codePattern.MatchString(code) {
		log.Printf("skipping invalid hs code: %s", code)
		return models.HSCode{}, false
	}

	hs := models.HSCode{
		Code:        code,
		Description: description,
		Chapter:     chapter,
		Section:     section,
	}

	switch c.Format {
	case FormatBasic:
		hs.Menu = MenuFromDescription(description)
		hs.Keywords = GenerateKeywords(description)
	case FormatExtended, FormatBilingual:
		hs.Menu = row.get("menu")
		if hs.Menu == "" {
			log.Printf("skipping row with missing menu (code=%q)", code)
			return models.HSCode{}, false
		}
		hs.Keywords = ParseKeywords(row.get("keywords"))
		if len(hs.Keywords) == 0 {
			hs.Keywords = GenerateKeywords(description)
		}
		if c.Format == FormatBilingual {
			hs.MenuVI = row.get("menu_vi")
			hs.DescriptionVI = row.get("description_vi")
			if kw := row.get("keywords_vi"); kw != "" {
				hs.KeywordsVI = ParseKeywords(kw)
			}
		}
	}
	return hs, true
}

func empty(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
