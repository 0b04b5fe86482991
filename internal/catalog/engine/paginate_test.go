package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Paginate_Clamp(t *testing.T) {
	items := products(5)

	testCases := []struct {
		name          string
		requestedPage int
	}{
		{name: "huge page", requestedPage: 9999},
		{name: "zero page", requestedPage: 0},
		{name: "negative page", requestedPage: -3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := Paginate(items, 12, tc.requestedPage)

			assert.Equal(t, 1, w.Page)
			assert.Equal(t, 1, w.PageCount)
			assert.Len(t, w.Items, 5)
			assert.Equal(t, 1, w.ShowingFrom)
			assert.Equal(t, 5, w.ShowingTo)
			assert.Equal(t, 5, w.Total)
		})
	}
}

func Test_Paginate_EmptyList(t *testing.T) {
	w := Paginate(nil, 12, 1)

	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 1, w.PageCount, "page count is never zero")
	assert.Empty(t, w.Items)
	assert.Equal(t, 0, w.ShowingFrom)
	assert.Equal(t, 0, w.ShowingTo)
}

func Test_Paginate_Coverage(t *testing.T) {
	// Concatenating all pages reconstructs the list with no duplicates or omissions.
	for _, total := range []int{0, 1, 11, 12, 13, 25, 36} {
		t.Run(fmt.Sprintf("total=%d", total), func(t *testing.T) {
			items := products(total)

			first := Paginate(items, 12, 1)
			var got []Product
			for page := 1; page <= first.PageCount; page++ {
				got = append(got, Paginate(items, 12, page).Items...)
			}

			require.Len(t, got, total)
			assert.Equal(t, items, append([]Product{}, got...))
		})
	}
}

func Test_Paginate_Metadata(t *testing.T) {
	items := products(25)

	w := Paginate(items, 12, 2)
	assert.Equal(t, 2, w.Page)
	assert.Equal(t, 3, w.PageCount)
	assert.Equal(t, 13, w.ShowingFrom)
	assert.Equal(t, 24, w.ShowingTo)

	last := Paginate(items, 12, 3)
	assert.Len(t, last.Items, 1)
	assert.Equal(t, 25, last.ShowingFrom)
	assert.Equal(t, 25, last.ShowingTo)
}

func products(n int) []Product {
	out := make([]Product, n)
	for i := range out {
		out[i] = Product{ID: fmt.Sprintf("p-%02d", i), Name: fmt.Sprintf("Product %02d", i)}
	}
	return out
}
