package engine

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DistinctCategories derives the category filter options present in a list.
// The sentinel "All" always comes first; the remaining values are distinct,
// trimmed, non-empty category strings sorted with locale-aware comparison.
// The output does not depend on input order.
func DistinctCategories(products []Product) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, p := range products {
		c := strings.TrimSpace(string(p.Category))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		values = append(values, c)
	}

	collate.New(language.AmericanEnglish).SortStrings(values)

	return append([]string{string(CategoryAll)}, values...)
}

// DistinctDietary derives the dietary filter options present in a list,
// sorted, without a sentinel (dietary filters are checkboxes, not radios).
func DistinctDietary(products []Product) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, p := range products {
		for _, tag := range p.Dietary {
			t := strings.TrimSpace(tag)
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			values = append(values, t)
		}
	}

	collate.New(language.AmericanEnglish).SortStrings(values)

	return values
}
