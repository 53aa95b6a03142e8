package parser

import (
	"strconv"
	"strings"

	"github.com/hstrade/hsconv/pkg/hsconv/models"
	"github.com/xuri/excelize/v2"
)

// ReadSpec describes where the tariff data sits inside a worksheet.
type ReadSpec struct {
	// StartRow is the 1-based row where data begins. Everything above it is
	// title and header matter.
	StartRow int
	// Column letters for the level, code, and description fields.
	LevelCol string
	CodeCol  string
	VICol    string
	ENCol    string
}

// DefaultReadSpec returns the layout of the standard tariff workbook:
// data from row 20, level in E, code in F, Vietnamese description in G,
// English description in H.
func DefaultReadSpec() ReadSpec {
	return ReadSpec{
		StartRow: 20,
		LevelCol: "E",
		CodeCol:  "F",
		VICol:    "G",
		ENCol:    "H",
	}
}

// ReadRows extracts SourceRows from a sheet according to the spec.
// Cell values are trimmed; unparsable level cells yield an absent level.
func ReadRows(f *excelize.File, sheetName string, spec ReadSpec) ([]models.SourceRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	levelIdx, err := columnIndex(spec.LevelCol)
	if err != nil {
		return nil, err
	}
	codeIdx, err := columnIndex(spec.CodeCol)
	if err != nil {
		return nil, err
	}
	viIdx, err := columnIndex(spec.VICol)
	if err != nil {
		return nil, err
	}
	enIdx, err := columnIndex(spec.ENCol)
	if err != nil {
		return nil, err
	}

	start := spec.StartRow
	if start < 1 {
		start = 1
	}

	var result []models.SourceRow
	for rowIdx, row := range rows {
		if rowIdx+1 < start {
			continue
		}
		result = append(result, models.SourceRow{
			Level:  parseLevel(cellAt(row, levelIdx)),
			Code:   cellAt(row, codeIdx),
			DescVI: cellAt(row, viIdx),
			DescEN: cellAt(row, enIdx),
		})
	}
	return result, nil
}

// columnIndex converts a column letter to a 0-based slice index.
func columnIndex(col string) (int, error) {
	n, err := excelize.ColumnNameToNumber(col)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// cellAt returns the trimmed cell value at idx, or "" when the row is
// shorter. GetRows drops trailing empty cells, so short rows are routine.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseLevel parses a level cell to an optional integer. Empty and
// non-numeric cells mean the row has no level.
func parseLevel(s string) *int {
	if s == "" {
		return nil
	}
	lv, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &lv
}
