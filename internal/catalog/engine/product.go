// Package engine implements the menu browsing core: filtering, ordering,
// pagination and facet extraction over an in-memory product list.
// All operations are pure and total; surrounding I/O supplies the list.
package engine

// Category is a product category. The catalog uses a closed set of values,
// but the type stays open so an unknown value degrades instead of panicking.
type Category string

const (
	// CategoryAll is the sentinel meaning "no category filter".
	CategoryAll      Category = "All"
	CategoryCakes    Category = "Cakes"
	CategoryCupcakes Category = "Cupcakes"
	CategoryCustom   Category = "Custom Made"
)

// Product is a read-only catalog entry, immutable for the duration of a
// browsing session. Prices are minor units (cents).
type Product struct {
	ID         string
	Name       string
	PriceCents int64
	Category   Category
	ImageURL   string
	Popularity int // 0-100, default ordering only
	Badge      string
	Dietary    []string
}
