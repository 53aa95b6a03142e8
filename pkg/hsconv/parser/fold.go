package parser

import (
	"sort"
	"strings"

	"github.com/hstrade/hsconv/pkg/hsconv/models"
)

// DefaultSeparator joins ancestor descriptions in the full-description
// fields.
const DefaultSeparator = " | "

// descPair is the cached description pair for one outline level.
type descPair struct {
	vi string
	en string
}

// LevelCache tracks the most recently seen description at each outline
// depth during a fold. Rows without a level are held in a separate slot so
// that absence never competes with real depths.
//
// Invariant: after a leveled row at depth L has been applied, the cache
// holds no entry deeper than L.
type LevelCache struct {
	levels    map[int]descPair
	unleveled *descPair
}

// NewLevelCache returns an empty cache for one fold pass.
func NewLevelCache() *LevelCache {
	return &LevelCache{levels: make(map[int]descPair)}
}

// Apply updates the cache for one row: entries deeper than the row's level
// are evicted, then the row's descriptions are stored at its level. Rows
// without a level evict nothing and occupy the unleveled slot.
func (c *LevelCache) Apply(row models.SourceRow) {
	pair := descPair{vi: row.DescVI, en: row.DescEN}
	if !row.Leveled() {
		c.unleveled = &pair
		return
	}
	for lv := range c.levels {
		if lv > *row.Level {
			delete(c.levels, lv)
		}
	}
	c.levels[*row.Level] = pair
}

// Joined concatenates the non-empty cached descriptions in ascending level
// order, unleveled slot first, producing the Vietnamese and English
// ancestor chains.
func (c *LevelCache) Joined(sep string) (vi, en string) {
	var viParts, enParts []string
	if c.unleveled != nil {
		if c.unleveled.vi != "" {
			viParts = append(viParts, c.unleveled.vi)
		}
		if c.unleveled.en != "" {
			enParts = append(enParts, c.unleveled.en)
		}
	}
	keys := make([]int, 0, len(c.levels))
	for lv := range c.levels {
		keys = append(keys, lv)
	}
	sort.Ints(keys)
	for _, lv := range keys {
		if p := c.levels[lv]; p.vi != "" {
			viParts = append(viParts, p.vi)
		}
		if p := c.levels[lv]; p.en != "" {
			enParts = append(enParts, p.en)
		}
	}
	return strings.Join(viParts, sep), strings.Join(enParts, sep)
}

// Snapshot returns a copy of the leveled cache contents as VI descriptions
// keyed by level. Intended for inspecting partial fold state in tests.
func (c *LevelCache) Snapshot() map[int]string {
	out := make(map[int]string, len(c.levels))
	for lv, p := range c.levels {
		out[lv] = p.vi
	}
	return out
}

// Fold runs a single ordered pass over the row sequence and emits one Entry
// per row that carries a non-empty digit-leading code. Rows without a usable
// code contribute to the cache only. The pass is strictly sequential: the
// cache state that shapes each entry depends on every row before it.
func Fold(rows []models.SourceRow, sep string) []models.Entry {
	entries, _ := FoldWith(NewLevelCache(), rows, sep)
	return entries
}

// FoldWith threads an explicit cache accumulator through the fold, returning
// the emitted entries alongside the final cache state. Feeding partial row
// sequences and inspecting the returned cache makes the pass testable in
// isolation.
func FoldWith(cache *LevelCache, rows []models.SourceRow, sep string) ([]models.Entry, *LevelCache) {
	if sep == "" {
		sep = DefaultSeparator
	}
	var entries []models.Entry
	for _, row := range rows {
		cache.Apply(row)
		if !isCodeRow(row.Code) {
			continue
		}
		fullVI, fullEN := cache.Joined(sep)
		entries = append(entries, models.Entry{
			Code:        row.Code,
			Level:       row.Level,
			DescVI:      row.DescVI,
			DescEN:      row.DescEN,
			DescVIFull:  fullVI,
			DescENFull:  fullEN,
			Section:     ExtractSectionNumber(row.DescVI),
			Chapter:     ExtractChapterNumber(row.Code),
			Hierarchy:   BuildHierarchy(row.Code),
			ParentCodes: ExtractParentCodes(row.Code),
		})
	}
	return entries, cache
}
