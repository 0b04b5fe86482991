package engine

// DefaultPageSize is the menu grid page size.
const DefaultPageSize = 12

// Window is one page of an ordered list plus the metadata a pagination UI
// needs. ShowingFrom and ShowingTo are 1-based inclusive positions, both
// zero when the list is empty.
type Window struct {
	Items       []Product
	Page        int
	PageCount   int
	ShowingFrom int
	ShowingTo   int
	Total       int
}

// Paginate slices the requested page out of items. Out-of-range page
// requests are clamped, never rejected; PageCount is at least 1 so the UI
// never shows page 0 of 0.
func Paginate(items []Product, pageSize, requestedPage int) Window {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	pageCount := (total + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * pageSize
	end := min(total, page*pageSize)
	if start > total {
		start = total
	}

	w := Window{
		Items:     items[start:end],
		Page:      page,
		PageCount: pageCount,
		Total:     total,
	}
	if total > 0 {
		w.ShowingFrom = start + 1
		w.ShowingTo = end
	}
	return w
}
