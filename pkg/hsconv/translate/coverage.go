package translate

import (
	"sort"
	"strings"
)

// PartialMatch records a description covered only via a partial dictionary
// key match.
type PartialMatch struct {
	Description string
	Key         string
}

// CoverageReport buckets descriptions by how the dictionary covers them.
type CoverageReport struct {
	Exact   []string
	Partial []PartialMatch
	Missing []string
}

// Total returns the number of analyzed descriptions.
func (r *CoverageReport) Total() int {
	return len(r.Exact) + len(r.Partial) + len(r.Missing)
}

// Percent returns n as a truncated percentage of the total, matching how
// the report is displayed.
func (r *CoverageReport) Percent(n int) int {
	if r.Total() == 0 {
		return 0
	}
	return n * 100 / r.Total()
}

// AnalyzeCoverage checks every description against the dictionary: exact
// key match first, then case-insensitive partial match against the sorted
// key list, otherwise missing. Sorted iteration keeps the reported partial
// keys stable across runs.
func AnalyzeCoverage(descriptions []string) *CoverageReport {
	report := &CoverageReport{}
	for _, desc := range descriptions {
		if _, ok := Dictionary[desc]; ok {
			report.Exact = append(report.Exact, desc)
			continue
		}
		lower := strings.ToLower(desc)
		matched := false
		for _, key := range dictionaryKeys {
			if strings.Contains(lower, strings.ToLower(key)) {
				report.Partial = append(report.Partial, PartialMatch{Description: desc, Key: key})
				matched = true
				break
			}
		}
		if !matched {
			report.Missing = append(report.Missing, desc)
		}
	}
	return report
}

// Category is a group of missing descriptions sharing a leading phrase.
type Category struct {
	Name  string
	Count int
}

// MissingCategories groups the missing descriptions by the text before the
// first ";" and returns the top n groups by size.
func (r *CoverageReport) MissingCategories(n int) []Category {
	byName := make(map[string]int)
	for _, desc := range r.Missing {
		name := desc
		if idx := strings.Index(desc, ";"); idx >= 0 {
			name = desc[:idx]
		}
		byName[strings.TrimSpace(name)]++
	}
	categories := make([]Category, 0, len(byName))
	for name, count := range byName {
		categories = append(categories, Category{Name: name, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Name < categories[j].Name
	})
	if len(categories) > n {
		categories = categories[:n]
	}
	return categories
}
