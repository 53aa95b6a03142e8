package translate

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"regexp"
	"strings"
)

// Model translates a single English description to Vietnamese via an
// external provider.
type Model interface {
	Translate(ctx context.Context, text string) (string, error)
	Name() string
}

// Stats counts how each translation was resolved.
type Stats struct {
	CacheHits   int
	DictHits    int
	APICalls    int
	APIErrors   int
	CacheMisses int
}

// Translator resolves EN→VI translations: in-memory cache first, then the
// static dictionary (exact, then partial match), then an optional AI model.
// Unresolvable texts translate to "" and are left for manual work.
type Translator struct {
	dict  map[string]string
	cache map[string]string
	model Model
	Stats Stats
}

// NewTranslator returns a dictionary-only translator.
func NewTranslator() *Translator {
	return &Translator{
		dict:  Dictionary,
		cache: make(map[string]string),
	}
}

// WithModel attaches an AI model used when the dictionary misses.
func (t *Translator) WithModel(m Model) *Translator {
	t.model = m
	return t
}

// Translate resolves one English description.
func (t *Translator) Translate(ctx context.Context, text string) string {
	if text == "" {
		return ""
	}
	if vi, ok := t.cache[text]; ok {
		t.Stats.CacheHits++
		return vi
	}
	if vi := t.fromDict(text); vi != "" {
		t.Stats.DictHits++
		t.cache[text] = vi
		return vi
	}
	vi := ""
	if t.model != nil {
		t.Stats.APICalls++
		translated, err := t.model.Translate(ctx, text)
		if err != nil {
			t.Stats.APIErrors++
			log.Printf("%s translation error: %v", t.model.Name(), err)
		} else {
			vi = translated
		}
	}
	t.Stats.CacheMisses++
	t.cache[text] = vi
	return vi
}

// fromDict tries an exact dictionary match, then a case-insensitive partial
// match against the dictionary keys in sorted order, so the same description
// always resolves to the same key.
func (t *Translator) fromDict(text string) string {
	if vi, ok := t.dict[text]; ok {
		return vi
	}
	lower := strings.ToLower(text)
	for _, key := range dictionaryKeys {
		if strings.Contains(lower, strings.ToLower(key)) {
			return t.dict[key]
		}
	}
	return ""
}

// LoadCache merges a persistent translation cache file. Missing or broken
// cache files are a warning, never fatal.
func (t *Translator) LoadCache(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("could not load translation cache %s: %v", path, err)
		}
		return
	}
	var cached map[string]string
	if err := json.Unmarshal(data, &cached); err != nil {
		log.Printf("could not parse translation cache %s: %v", path, err)
		return
	}
	for k, v := range cached {
		t.cache[k] = v
	}
}

// SaveCache writes the in-memory cache back to the cache file.
func (t *Translator) SaveCache(path string) {
	data, err := json.MarshalIndent(t.cache, "", "  ")
	if err != nil {
		log.Printf("could not encode translation cache: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("could not save translation cache %s: %v", path, err)
	}
}

// maxDescKeywords caps per-description keyword extraction.
const maxDescKeywords = 5

var keywordPunct = regexp.MustCompile(`[,;()]`)

var stopWordsEN = map[string]bool{
	"live": true, "other": true, "than": true, "pure": true, "bred": true,
	"animals": true, "of": true, "and": true, "or": true, "the": true,
	"a": true, "an": true, "in": true, "to": true, "for": true,
	"with": true, "from": true, "not": true, "this": true, "that": true,
	"these": true, "those": true,
}

var stopWordsVI = map[string]bool{
	"sống": true, "khác": true, "hơn": true, "thuần": true, "giống": true,
	"động": true, "vật": true, "của": true, "và": true, "hoặc": true,
	"cái": true, "trong": true, "để": true, "cho": true, "với": true,
	"từ": true, "không": true, "này": true, "kia": true, "các": true,
}

// Keywords extracts up to five content words from a description in the
// given language ("en" or "vi").
func Keywords(description, language string) []string {
	stop := stopWordsEN
	if language == "vi" {
		stop = stopWordsVI
	}
	text := keywordPunct.ReplaceAllString(strings.ToLower(description), " ")

	var keywords []string
	for _, w := range strings.Fields(text) {
		// Length is measured in runes; Vietnamese words are multi-byte.
		if len([]rune(w)) <= 2 || stop[w] {
			continue
		}
		keywords = append(keywords, w)
		if len(keywords) == maxDescKeywords {
			break
		}
	}
	return keywords
}
