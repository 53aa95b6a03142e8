package csvconv

import (
	"regexp"
	"strings"
)

// maxKeywords caps generated keyword lists.
const maxKeywords = 10

// maxMenuLen caps derived menu names.
const maxMenuLen = 100

var commonWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"is": true, "are": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "must": true,
	"can": true, "that": true, "this": true, "these": true,
	"those": true, "as": true, "if": true, "while": true,
	"when": true, "where": true,
}

var punctPattern = regexp.MustCompile(`[,;:()\-]`)
var trailingPunct = regexp.MustCompile(`[,.]$`)

// GenerateKeywords extracts meaningful terms from a description: lowercase,
// punctuation stripped, stop words and short words dropped, order-preserving
// dedupe, capped at ten.
func GenerateKeywords(description string) []string {
	if description == "" {
		return nil
	}
	text := punctPattern.ReplaceAllString(strings.ToLower(description), " ")

	seen := make(map[string]bool)
	var keywords []string
	for _, w := range strings.Fields(text) {
		if len(w) <= 2 || commonWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// ParseKeywords splits a comma-separated keywords cell, dropping empty
// items.
func ParseKeywords(s string) []string {
	var keywords []string
	for _, kw := range strings.Split(s, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// MenuFromDescription derives a short menu name from a description when the
// source has no menu column: the first eight words, trailing punctuation
// stripped, truncated past 100 characters.
func MenuFromDescription(description string) string {
	if description == "" {
		return ""
	}
	words := strings.Fields(description)
	if len(words) > 8 {
		words = words[:8]
	}
	menu := trailingPunct.ReplaceAllString(strings.Join(words, " "), "")
	if len(menu) > maxMenuLen {
		return menu[:maxMenuLen-3] + "..."
	}
	return menu
}
