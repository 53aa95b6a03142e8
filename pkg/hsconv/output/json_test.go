package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hstrade/hsconv/pkg/hsconv/models"
)

func TestToJSONKeepsUnicode(t *testing.T) {
	data, err := ToJSON(map[string]string{"description_vi": "Ngựa; sống"}, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "Ngựa; sống") {
		t.Errorf("Vietnamese text must not be escaped, got %s", data)
	}
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(map[string]int{"total_codes": 1}, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Errorf("Expected indented output, got %s", data)
	}
}

func TestWriteJSONCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "data", "hs-codes.json")

	set := models.ConvertedSet{
		HSCodes:  []models.HSCode{{Code: "010121", Description: "Horses; live"}},
		Metadata: models.ConvertMetadata{TotalCodes: 1, Format: "basic"},
	}
	if err := WriteJSON(path, set, true); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	var got models.ConvertedSet
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Written file is not valid JSON: %v", err)
	}
	if got.Metadata.TotalCodes != 1 || got.HSCodes[0].Code != "010121" {
		t.Errorf("Unexpected round trip: %+v", got)
	}
}
