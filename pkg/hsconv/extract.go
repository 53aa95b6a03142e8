package hsconv

import (
	"log"

	"github.com/hstrade/hsconv/pkg/hsconv/models"
	"github.com/hstrade/hsconv/pkg/hsconv/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads the tariff workbook at path and folds its rows into a
// CodeSet. The requested sheet falls back to the first sheet when missing.
func Extract(path string, opts Options) (*models.CodeSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ConvertError{Stage: "extract", Path: path, Err: err}
	}
	defer f.Close()

	sheet, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, &ConvertError{Stage: "extract", Path: path, Err: err}
	}

	rows, err := parser.ReadRows(f, sheet, opts.readSpec())
	if err != nil {
		return nil, &ConvertError{Stage: "extract", Path: path, Err: err}
	}

	entries := parser.Fold(rows, opts.separator())

	return &models.CodeSet{
		Metadata: models.CodeSetMetadata{
			TotalCodes: len(entries),
			Source:     path,
			Sheet:      sheet,
		},
		Codes: entries,
	}, nil
}

// resolveSheet picks the requested sheet, falling back to the first sheet
// with a warning when the name is unknown.
func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoSheets
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	log.Printf("sheet %q not found, using %q (available: %v)", name, sheets[0], sheets)
	return sheets[0], nil
}
