package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/hstrade/hsconv/pkg/hsconv/translate"
)

func TestWriteBilingualCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "bilingual.csv")

	rows := []translate.BilingualRow{
		{
			Code:          "010121",
			Menu:          "I",
			Description:   "Horses; live",
			DescriptionVI: "Ngựa; sống",
			Keywords:      "horses",
			KeywordsVI:    "ngựa",
			Chapter:       "01",
			Level:         "6",
		},
	}
	if err := WriteBilingualCSV(path, rows); err != nil {
		t.Fatalf("WriteBilingualCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open written file: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Written file is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected header + 1 row, got %d records", len(records))
	}
	if records[0][0] != "code" || records[0][3] != "description_vi" {
		t.Errorf("Unexpected header: %v", records[0])
	}
	if records[1][0] != "010121" || records[1][3] != "Ngựa; sống" {
		t.Errorf("Unexpected row: %v", records[1])
	}
}
