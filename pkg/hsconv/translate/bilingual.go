package translate

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"
)

// BilingualRow is one output row of the bilingual CSV artifact.
type BilingualRow struct {
	Code          string
	Menu          string
	Description   string
	DescriptionVI string
	Keywords      string
	KeywordsVI    string
	Chapter       string
	Level         string
}

// BilingualStats summarizes a bilingual conversion run.
type BilingualStats struct {
	Total      int
	Translated int
	Missing    int
}

// BilingualConverter turns harmonized-system CSV rows (section, hscode,
// description, parent, level) into bilingual EN/VI rows.
type BilingualConverter struct {
	Translator *Translator
	// Limit stops after N input rows when positive. Useful to bound AI
	// provider spend.
	Limit int
	Stats BilingualStats
}

// NewBilingualConverter returns a converter over the given translator.
func NewBilingualConverter(t *Translator) *BilingualConverter {
	return &BilingualConverter{Translator: t}
}

// Convert reads the harmonized-system CSV stream and produces bilingual
// rows with translations and per-language keywords.
func (c *BilingualConverter) Convert(ctx context.Context, r io.Reader) ([]BilingualRow, error) {
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

	get := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	c.Stats = BilingualStats{}
	var rows []BilingualRow
	for {
		if c.Limit > 0 && c.Stats.Total >= c.Limit {
			break
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv parse error: %w", err)
		}
		c.Stats.Total++
		if c.Stats.Total%1000 == 0 {
			log.Printf("processing row %d", c.Stats.Total)
		}

		descEN := get(record, "description")
		descVI := c.Translator.Translate(ctx, descEN)
		if descVI != "" {
			c.Stats.Translated++
		} else {
			c.Stats.Missing++
		}

		keywordsVI := ""
		if descVI != "" {
			keywordsVI = strings.Join(Keywords(descVI, "vi"), ", ")
		}

		rows = append(rows, BilingualRow{
			Code:          get(record, "hscode"),
			Menu:          get(record, "section"),
			Description:   descEN,
			DescriptionVI: descVI,
			Keywords:      strings.Join(Keywords(descEN, "en"), ", "),
			KeywordsVI:    keywordsVI,
			Chapter:       get(record, "parent"),
			Level:         get(record, "level"),
		})
	}
	return rows, nil
}
