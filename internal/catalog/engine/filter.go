package engine

import (
	"slices"
	"strings"
)

// SortKey selects the menu ordering.
type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortPriceLow   SortKey = "priceLow"
	SortPriceHigh  SortKey = "priceHigh"
	SortName       SortKey = "name"
)

// ParseSortKey maps a raw string onto a SortKey.
// Unrecognized values fall back to the default popularity ordering.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortName:
		return SortKey(s)
	default:
		return SortPopularity
	}
}

// PriceBand is a closed numeric interval used to bucket products.
type PriceBand string

const (
	// BandAll is the sentinel meaning "no price filter".
	BandAll     PriceBand = "all"
	BandUnder50 PriceBand = "0-50"
	Band50To100 PriceBand = "50-100"
)

// priceBands is ordered from lowest to highest. The first band is inclusive
// at its low edge; every subsequent band is exclusive there, so adjacent
// bands share a boundary without double-counting it.
var priceBands = []struct {
	band PriceBand
	low  int64 // cents
	high int64 // cents
}{
	{BandUnder50, 0, 50_00},
	{Band50To100, 50_00, 100_00},
}

// matchesBand reports whether a price falls into the selected band.
// The sentinel and unknown bands apply no filter.
func matchesBand(priceCents int64, band PriceBand) bool {
	if band == BandAll || band == "" {
		return true
	}
	for i, b := range priceBands {
		if b.band != band {
			continue
		}
		if i == 0 {
			return priceCents >= b.low && priceCents <= b.high
		}
		return priceCents > b.low && priceCents <= b.high
	}
	return true
}

// FilterState is the browsing session's view over the catalog.
// Zero value is not useful; use DefaultFilter.
type FilterState struct {
	Search   string
	Category Category
	Band     PriceBand
	Dietary  []string
	Sort     SortKey
	Page     int
}

// DefaultFilter is the state a full page reload resets to.
func DefaultFilter() FilterState {
	return FilterState{
		Category: CategoryAll,
		Band:     BandAll,
		Sort:     SortPopularity,
		Page:     1,
	}
}

// Every mutation that changes result membership or ordering returns the
// user to page 1. SetPage is the only mutator that leaves filters alone.

func (f *FilterState) SetSearch(s string) {
	f.Search = s
	f.Page = 1
}

func (f *FilterState) SetCategory(c Category) {
	f.Category = c
	f.Page = 1
}

func (f *FilterState) SetBand(b PriceBand) {
	f.Band = b
	f.Page = 1
}

func (f *FilterState) SetDietary(tags []string) {
	f.Dietary = tags
	f.Page = 1
}

func (f *FilterState) SetSort(k SortKey) {
	f.Sort = k
	f.Page = 1
}

func (f *FilterState) SetPage(page int) {
	f.Page = page
}

// Matches reports whether a product passes the filter state.
// Text, category, price band and dietary conditions must all hold.
func Matches(p Product, f FilterState) bool {
	s := strings.ToLower(strings.TrimSpace(f.Search))
	matchesSearch := s == "" ||
		strings.Contains(strings.ToLower(p.Name), s) ||
		strings.Contains(strings.ToLower(string(p.Category)), s)

	matchesCategory := f.Category == CategoryAll || f.Category == "" || p.Category == f.Category

	matchesPrice := matchesBand(p.PriceCents, f.Band)

	matchesDietary := true
	for _, tag := range f.Dietary {
		if !slices.Contains(p.Dietary, tag) {
			matchesDietary = false
			break
		}
	}

	return matchesSearch && matchesCategory && matchesPrice && matchesDietary
}
