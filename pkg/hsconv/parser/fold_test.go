package parser

import (
	"testing"

	"github.com/hstrade/hsconv/pkg/hsconv/models"
)

func lv(n int) *int { return &n }

func TestFoldAncestorChain(t *testing.T) {
	rows := []models.SourceRow{
		{Level: lv(1), Code: "", DescVI: "Section I", DescEN: "Section I EN"},
		{Level: lv(2), Code: "0101", DescVI: "Ngựa", DescEN: "Horses"},
	}

	entries := Fold(rows, "")
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.DescVIFull != "Section I | Ngựa" {
		t.Errorf("Expected full VI description 'Section I | Ngựa', got %q", e.DescVIFull)
	}
	if e.DescENFull != "Section I EN | Horses" {
		t.Errorf("Expected full EN description 'Section I EN | Horses', got %q", e.DescENFull)
	}
}

func TestFoldEmissionCount(t *testing.T) {
	rows := []models.SourceRow{
		{Level: lv(0), Code: "", DescVI: "heading", DescEN: "heading"},
		{Level: lv(1), Code: "0101", DescVI: "a", DescEN: "a"},
		{Level: lv(1), Code: "x101", DescVI: "b", DescEN: "b"}, // non-digit leading
		{Level: lv(1), Code: "0102", DescVI: "c", DescEN: "c"},
		{Level: nil, Code: "", DescVI: "", DescEN: ""},
	}

	entries := Fold(rows, "")
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries (digit-leading codes only), got %d", len(entries))
	}
}

func TestFoldEvictsDeeperLevels(t *testing.T) {
	rows := []models.SourceRow{
		{Level: lv(1), Code: "", DescVI: "L1", DescEN: "L1"},
		{Level: lv(2), Code: "", DescVI: "L2", DescEN: "L2"},
		{Level: lv(3), Code: "", DescVI: "L3", DescEN: "L3"},
		// Back up to level 2: the level-3 entry must be gone.
		{Level: lv(2), Code: "0201", DescVI: "L2b", DescEN: "L2b"},
	}

	entries, cache := FoldWith(NewLevelCache(), rows, "")
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].DescVIFull; got != "L1 | L2b" {
		t.Errorf("Expected 'L1 | L2b', got %q", got)
	}
	snapshot := cache.Snapshot()
	if _, ok := snapshot[3]; ok {
		t.Errorf("Level 3 should be evicted after a level-2 row, snapshot: %v", snapshot)
	}
	if snapshot[2] != "L2b" {
		t.Errorf("Level 2 should hold the latest row, got %q", snapshot[2])
	}
}

func TestFoldEqualLevelReplacesSibling(t *testing.T) {
	rows := []models.SourceRow{
		{Level: lv(1), Code: "", DescVI: "parent", DescEN: "parent"},
		{Level: lv(2), Code: "0101", DescVI: "first", DescEN: "first"},
		{Level: lv(2), Code: "0102", DescVI: "second", DescEN: "second"},
	}

	entries := Fold(rows, "")
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if got := entries[1].DescVIFull; got != "parent | second" {
		t.Errorf("Sibling should replace the cached level, got %q", got)
	}
}

func TestFoldDuplicateCodes(t *testing.T) {
	rows := []models.SourceRow{
		{Level: lv(1), Code: "010121", DescVI: "a", DescEN: "a"},
		{Level: lv(1), Code: "010121", DescVI: "a", DescEN: "a"},
	}

	entries := Fold(rows, "")
	if len(entries) != 2 {
		t.Errorf("Duplicate codes must not be deduplicated, got %d entries", len(entries))
	}
}

func TestFoldUnleveledRow(t *testing.T) {
	rows := []models.SourceRow{
		{Level: nil, Code: "", DescVI: "root label", DescEN: "root label"},
		{Level: lv(1), Code: "0101", DescVI: "child", DescEN: "child"},
		// Unleveled rows never evict leveled entries.
		{Level: nil, Code: "0102", DescVI: "other", DescEN: "other"},
	}

	entries := Fold(rows, "")
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if got := entries[0].DescVIFull; got != "root label | child" {
		t.Errorf("Unleveled text should lead the chain, got %q", got)
	}
	if got := entries[1].DescVIFull; got != "other | child" {
		t.Errorf("Expected 'other | child', got %q", got)
	}
}

func TestFoldSkipsEmptyDescriptions(t *testing.T) {
	rows := []models.SourceRow{
		{Level: lv(1), Code: "", DescVI: "VI only", DescEN: ""},
		{Level: lv(2), Code: "0101", DescVI: "", DescEN: "EN only"},
	}

	entries := Fold(rows, "")
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].DescVIFull; got != "VI only" {
		t.Errorf("Empty cached descriptions must be skipped, got VI %q", got)
	}
	if got := entries[0].DescENFull; got != "EN only" {
		t.Errorf("Empty cached descriptions must be skipped, got EN %q", got)
	}
}

func TestFoldDerivedFields(t *testing.T) {
	rows := []models.SourceRow{
		{Level: lv(1), Code: "0101", DescVI: "Chương 1 - Động vật sống", DescEN: "Live animals"},
	}

	entries := Fold(rows, "")
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Section != "1" {
		t.Errorf("Expected section '1', got %q", e.Section)
	}
	if e.Chapter != "01" {
		t.Errorf("Expected chapter '01', got %q", e.Chapter)
	}
	if e.Hierarchy == nil || e.Hierarchy.FullCode != "010100" {
		t.Errorf("Expected hierarchy full code '010100', got %+v", e.Hierarchy)
	}
	if e.ParentCodes == nil || e.ParentCodes.Heading != "0101" {
		t.Errorf("Expected parent heading '0101', got %+v", e.ParentCodes)
	}
}

func TestFoldShortCode(t *testing.T) {
	// Codes shorter than 4 digits are emitted but carry no derived code
	// structure.
	rows := []models.SourceRow{
		{Level: lv(1), Code: "01", DescVI: "short", DescEN: "short"},
	}

	entries := Fold(rows, "")
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Hierarchy != nil {
		t.Errorf("Short code should have nil hierarchy, got %+v", e.Hierarchy)
	}
	if e.ParentCodes != nil {
		t.Errorf("Short code should have nil parent codes, got %+v", e.ParentCodes)
	}
	if e.Chapter != "01" {
		t.Errorf("Chapter prefix still applies to short codes, got %q", e.Chapter)
	}
}

func TestFoldWithPartialSequences(t *testing.T) {
	cache := NewLevelCache()

	first := []models.SourceRow{
		{Level: lv(1), Code: "", DescVI: "part one", DescEN: "part one"},
	}
	_, cache = FoldWith(cache, first, "")

	second := []models.SourceRow{
		{Level: lv(2), Code: "0101", DescVI: "part two", DescEN: "part two"},
	}
	entries, _ := FoldWith(cache, second, "")
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].DescVIFull; got != "part one | part two" {
		t.Errorf("Cache must carry across partial folds, got %q", got)
	}
}
