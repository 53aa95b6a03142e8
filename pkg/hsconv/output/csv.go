package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hstrade/hsconv/pkg/hsconv/translate"
)

// bilingualHeader is the column layout of the bilingual CSV artifact.
var bilingualHeader = []string{
	"code", "menu", "description", "description_vi",
	"keywords", "keywords_vi", "chapter", "level",
}

// WriteBilingualCSV writes bilingual rows to path, creating parent
// directories as needed.
func WriteBilingualCSV(path string, rows []translate.BilingualRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(bilingualHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Code, row.Menu, row.Description, row.DescriptionVI,
			row.Keywords, row.KeywordsVI, row.Chapter, row.Level,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
