package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Compare orders two products under the given sort key.
// Returns a negative, zero or positive value in the usual comparator sense.
// Ties are intentionally left at zero; SortProducts relies on a stable sort
// to keep tied products in their input order.
func Compare(a, b Product, key SortKey, c *collate.Collator) int {
	switch key {
	case SortPriceLow:
		return compareInt64(a.PriceCents, b.PriceCents)
	case SortPriceHigh:
		return compareInt64(b.PriceCents, a.PriceCents)
	case SortName:
		return c.CompareString(a.Name, b.Name)
	default:
		// popularity, descending; also the fallback for unknown keys
		return b.Popularity - a.Popularity
	}
}

// SortProducts orders items in place. The sort is stable so that products
// comparing equal keep their relative input order.
func SortProducts(items []Product, key SortKey) {
	c := collate.New(language.AmericanEnglish)
	sort.SliceStable(items, func(i, j int) bool {
		return Compare(items[i], items[j], key, c) < 0
	})
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
