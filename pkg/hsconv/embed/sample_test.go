package embed

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestSampleDeterministic(t *testing.T) {
	e := NewSample("")
	ctx := context.Background()

	first, err := e.EmbedBatch(ctx, []string{"Horses; live"})
	if err != nil {
		t.Fatalf("EmbedBatch failed: %v", err)
	}
	second, err := e.EmbedBatch(ctx, []string{"Horses; live"})
	if err != nil {
		t.Fatalf("EmbedBatch failed: %v", err)
	}

	for i := range first[0] {
		if first[0][i] != second[0][i] {
			t.Fatalf("Same text must yield the same vector, differs at %d", i)
		}
	}
}

func TestSampleDistinctTexts(t *testing.T) {
	e := NewSample("sample-16")
	vectors, err := e.EmbedBatch(context.Background(), []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("EmbedBatch failed: %v", err)
	}

	same := true
	for i := range vectors[0] {
		if vectors[0][i] != vectors[1][i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different texts should yield different vectors")
	}
}

func TestSampleUnitVector(t *testing.T) {
	e := NewSample("sample-32")
	vectors, err := e.EmbedBatch(context.Background(), []string{"Horses; live"})
	if err != nil {
		t.Fatalf("EmbedBatch failed: %v", err)
	}

	var sumSq float64
	for _, v := range vectors[0] {
		sumSq += v * v
	}
	if mag := math.Sqrt(sumSq); math.Abs(mag-1) > 1e-9 {
		t.Errorf("Expected unit vector, magnitude %f", mag)
	}
}

func TestSampleDimension(t *testing.T) {
	tests := []struct {
		model    string
		expected int
	}{
		{"", sampleDefaultDim},
		{"sample-256", 256},
		{"sample-0", sampleDefaultDim},
		{"not-a-sample-model", sampleDefaultDim},
	}

	for _, tt := range tests {
		e := NewSample(tt.model)
		if e.Dimension() != tt.expected {
			t.Errorf("NewSample(%q).Dimension() = %d, expected %d", tt.model, e.Dimension(), tt.expected)
		}
	}
}

func TestSampleEmptyBatch(t *testing.T) {
	e := NewSample("")
	if _, err := e.EmbedBatch(context.Background(), nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestNewProvider(t *testing.T) {
	e, err := New("sample", "sample-64", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if e.Provider() != "sample" || e.Dimension() != 64 {
		t.Errorf("Unexpected embedder: %s/%d", e.Provider(), e.Dimension())
	}

	if _, err := New("unknown", "", ""); err == nil {
		t.Error("Expected error for unknown provider")
	}
}
