package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end browsing scenario: category filter + cheapest-first sort on a
// catalog of 15 products, page size 12.
func Test_Run_MenuScenario(t *testing.T) {
	var catalog []Product
	// 7 cupcakes with descending prices so the sort has work to do.
	for i := 0; i < 7; i++ {
		catalog = append(catalog, Product{
			ID:         fmt.Sprintf("cup-%d", i),
			Name:       fmt.Sprintf("Cupcake %d", i),
			Category:   CategoryCupcakes,
			PriceCents: int64(70_00 - i*10_00),
			Popularity: 10 * i,
		})
	}
	// 8 other products that must not appear.
	for i := 0; i < 8; i++ {
		catalog = append(catalog, Product{
			ID:         fmt.Sprintf("cake-%d", i),
			Name:       fmt.Sprintf("Cake %d", i),
			Category:   CategoryCakes,
			PriceCents: int64(40_00 + i*5_00),
		})
	}
	require.Len(t, catalog, 15)

	f := DefaultFilter()
	f.SetCategory(CategoryCupcakes)
	f.SetSort(SortPriceLow)

	res := Run(catalog, f, DefaultPageSize)

	// Page 1 holds all 7 cupcakes, cheapest first.
	assert.Equal(t, 7, res.Window.Total)
	assert.Equal(t, 1, res.Window.Page)
	assert.Equal(t, 1, res.Window.PageCount)
	assert.Equal(t, 1, res.Window.ShowingFrom)
	assert.Equal(t, 7, res.Window.ShowingTo)
	require.Len(t, res.Window.Items, 7)
	for i := 1; i < len(res.Window.Items); i++ {
		assert.LessOrEqual(t, res.Window.Items[i-1].PriceCents, res.Window.Items[i].PriceCents)
	}

	// Facets reflect the full catalog, not the filtered list.
	assert.Equal(t, []string{"All", "Cakes", "Cupcakes"}, res.Facets.Categories)
}

func Test_Run_DoesNotMutateInput(t *testing.T) {
	catalog := []Product{
		{ID: "b", Name: "Banana", Category: CategoryCakes, PriceCents: 20_00},
		{ID: "a", Name: "Apple", Category: CategoryCakes, PriceCents: 10_00},
	}
	f := DefaultFilter()
	f.SetSort(SortPriceLow)

	_ = Run(catalog, f, DefaultPageSize)

	assert.Equal(t, "b", catalog[0].ID, "input snapshot must stay untouched")
}
