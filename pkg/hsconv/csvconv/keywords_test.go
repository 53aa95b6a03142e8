package csvconv

import (
	"reflect"
	"strings"
	"testing"
)

func TestGenerateKeywords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "punctuation and stop words",
			input:    "Horses; live, pure-bred breeding animals",
			expected: []string{"horses", "pure", "bred", "breeding", "animals"},
		},
		{
			name:     "dedupes repeated words",
			input:    "Fish fish FISH products",
			expected: []string{"fish", "products"},
		},
		{
			name:     "drops short and common words",
			input:    "of the in to ox",
			expected: nil,
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateKeywords(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("GenerateKeywords(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGenerateKeywordsCap(t *testing.T) {
	input := "alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima"
	got := GenerateKeywords(input)
	if len(got) != maxKeywords {
		t.Errorf("Expected %d keywords, got %d: %v", maxKeywords, len(got), got)
	}
}

func TestParseKeywords(t *testing.T) {
	got := ParseKeywords(" horses , breeding ,, ")
	expected := []string{"horses", "breeding"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ParseKeywords = %v, expected %v", got, expected)
	}

	if ParseKeywords("") != nil {
		t.Error("Expected nil for empty input")
	}
}

func TestMenuFromDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "short description unchanged",
			input:    "Live horses",
			expected: "Live horses",
		},
		{
			name:     "first eight words",
			input:    "one two three four five six seven eight nine ten",
			expected: "one two three four five six seven eight",
		},
		{
			name:     "trailing punctuation stripped",
			input:    "Horses; live,",
			expected: "Horses; live",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MenuFromDescription(tt.input); got != tt.expected {
				t.Errorf("MenuFromDescription(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMenuFromDescriptionTruncates(t *testing.T) {
	long := strings.Repeat("verylongword ", 8)
	got := MenuFromDescription(long)
	if len(got) > maxMenuLen {
		t.Errorf("Menu length %d exceeds cap %d", len(got), maxMenuLen)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Truncated menu should end with ellipsis, got %q", got)
	}
}
