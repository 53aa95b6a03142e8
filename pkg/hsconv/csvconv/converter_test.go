package csvconv

import (
	"strings"
	"testing"
)

func TestConvertBasic(t *testing.T) {
	csv := `code,description,chapter,section
010121,"Horses; live, pure-bred breeding animals",01,I
010129,"Horses; live, other",01,I
`
	conv := NewConverter(FormatBasic)
	codes, err := conv.Convert(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(codes) != 2 {
		t.Fatalf("Expected 2 codes, got %d", len(codes))
	}

	hs := codes[0]
	if hs.Code != "010121" {
		t.Errorf("Expected code '010121', got %q", hs.Code)
	}
	if hs.Menu == "" {
		t.Error("Basic format should derive a menu from the description")
	}
	if len(hs.Keywords) == 0 {
		t.Error("Basic format should generate keywords from the description")
	}
	if hs.Chapter != "01" || hs.Section != "I" {
		t.Errorf("Unexpected chapter/section: %q/%q", hs.Chapter, hs.Section)
	}
}

func TestConvertSkipsInvalidRows(t *testing.T) {
	csv := `code,description,chapter,section
010121,Horses,01,I
01012,Too short code,01,I
abc123,Bad code,01,I
010129,,01,I
,,,
010130,Valid again,01,I
`
	conv := NewConverter(FormatBasic)
	codes, err := conv.Convert(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(codes) != 2 {
		t.Errorf("Expected 2 valid codes, got %d", len(codes))
	}
	if conv.Skipped != 3 {
		t.Errorf("Expected 3 skipped rows, got %d", conv.Skipped)
	}
}

func TestConvertExtended(t *testing.T) {
	csv := `code,menu,description,chapter,section,keywords
010121,Live horses,"Horses; live, pure-bred breeding animals",01,I,"horses, breeding"
010129,Other horses,"Horses; live, other",01,I,
`
	conv := NewConverter(FormatExtended)
	codes, err := conv.Convert(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(codes) != 2 {
		t.Fatalf("Expected 2 codes, got %d", len(codes))
	}

	if codes[0].Menu != "Live horses" {
		t.Errorf("Expected menu 'Live horses', got %q", codes[0].Menu)
	}
	if len(codes[0].Keywords) != 2 || codes[0].Keywords[0] != "horses" {
		t.Errorf("Expected parsed keywords, got %v", codes[0].Keywords)
	}
	// Empty keywords cell falls back to generated keywords.
	if len(codes[1].Keywords) == 0 {
		t.Error("Expected generated keywords for empty keywords cell")
	}
}

func TestConvertExtendedRequiresMenu(t *testing.T) {
	csv := `code,menu,description,chapter,section,keywords
010121,,Horses,01,I,
`
	conv := NewConverter(FormatExtended)
	codes, err := conv.Convert(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(codes) != 0 {
		t.Errorf("Extended rows without menu must be skipped, got %d codes", len(codes))
	}
}

func TestConvertBilingual(t *testing.T) {
	csv := `code,menu,menu_vi,description,description_vi,chapter,section,keywords,keywords_vi
010121,Live horses,Ngựa sống,"Horses; live","Ngựa; sống",01,I,"horses","ngựa"
`
	conv := NewConverter(FormatBilingual)
	codes, err := conv.Convert(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(codes) != 1 {
		t.Fatalf("Expected 1 code, got %d", len(codes))
	}

	hs := codes[0]
	if hs.MenuVI != "Ngựa sống" {
		t.Errorf("Expected menu_vi 'Ngựa sống', got %q", hs.MenuVI)
	}
	if hs.DescriptionVI != "Ngựa; sống" {
		t.Errorf("Expected description_vi 'Ngựa; sống', got %q", hs.DescriptionVI)
	}
	if len(hs.KeywordsVI) != 1 || hs.KeywordsVI[0] != "ngựa" {
		t.Errorf("Expected keywords_vi [ngựa], got %v", hs.KeywordsVI)
	}
}

func TestConvertNoHeader(t *testing.T) {
	conv := NewConverter(FormatBasic)
	if _, err := conv.Convert(strings.NewReader("")); err == nil {
		t.Error("Expected error for empty csv")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"basic", FormatBasic, false},
		{"Extended", FormatExtended, false},
		{"BILINGUAL", FormatBilingual, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, expected %q", tt.input, got, tt.want)
		}
	}
}
