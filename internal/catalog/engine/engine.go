package engine

// Facets are the filter affordances derived from the full catalog.
type Facets struct {
	Categories []string
	Dietary    []string
}

// Result is one rendered menu view: the page window over the filtered,
// sorted catalog plus the facets of the full catalog.
type Result struct {
	Window Window
	Facets Facets
}

// Run executes the filter -> stable sort -> paginate pipeline over an
// immutable snapshot of the catalog. The input slice is never mutated.
func Run(products []Product, f FilterState, pageSize int) Result {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if Matches(p, f) {
			filtered = append(filtered, p)
		}
	}

	SortProducts(filtered, f.Sort)

	return Result{
		Window: Paginate(filtered, pageSize, f.Page),
		Facets: Facets{
			Categories: DistinctCategories(products),
			Dietary:    DistinctDietary(products),
		},
	}
}
