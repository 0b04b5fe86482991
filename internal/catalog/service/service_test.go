package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	cerrors "github.com/mayasbakes/bakehouse/internal/catalog/errors"
	"github.com/mayasbakes/bakehouse/internal/catalog/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	products []store.Product
	product  store.Product
	error    error
}

// Simulate finding the whole catalog
func (m *mockProductStore) FindAll(_ context.Context) ([]store.Product, error) {
	return m.products, m.error
}

// Simulate finding a product by ID
func (m *mockProductStore) FindByID(_ context.Context, _ uuid.UUID) (*store.Product, error) {
	return &m.product, m.error
}

// Simulate creating a product
func (m *mockProductStore) Create(_ context.Context, _ store.CreateParams) (*store.Product, error) {
	return &m.product, m.error
}

// Simulate updating a product
func (m *mockProductStore) Update(_ context.Context, _ store.UpdateParams) (*store.Product, error) {
	return &m.product, m.error
}

// Simulate deleting a product by ID
func (m *mockProductStore) DeleteByID(_ context.Context, _ uuid.UUID, _ int32) error {
	return m.error
}

func menuFixture() []store.Product {
	return []store.Product{
		{ID: uuid.New(), Name: "Chocolate Silk", Category: "Cakes", PriceCents: 45_00, Popularity: 90},
		{ID: uuid.New(), Name: "Vanilla Dozen", Category: "Cupcakes", PriceCents: 30_00, Popularity: 70},
		{ID: uuid.New(), Name: "Berry Half Dozen", Category: "Cupcakes", PriceCents: 18_00, Popularity: 40},
		{ID: uuid.New(), Name: "Wedding Tier", Category: "Custom Made", PriceCents: 250_00, Popularity: 60},
	}
}

func Test_CatalogService_Menu(t *testing.T) {
	testCases := []struct {
		name          string
		query         MenuQuery
		expectedNames []string
		expectedTotal int
	}{
		{
			name:          "default state, popularity order",
			query:         MenuQuery{Page: 1},
			expectedNames: []string{"Chocolate Silk", "Vanilla Dozen", "Wedding Tier", "Berry Half Dozen"},
			expectedTotal: 4,
		},
		{
			name:          "category filter with cheapest-first sort",
			query:         MenuQuery{Category: "Cupcakes", Sort: "priceLow", Page: 1},
			expectedNames: []string{"Berry Half Dozen", "Vanilla Dozen"},
			expectedTotal: 2,
		},
		{
			name:          "price band filter",
			query:         MenuQuery{Price: "0-50", Sort: "name", Page: 1},
			expectedNames: []string{"Berry Half Dozen", "Chocolate Silk", "Vanilla Dozen"},
			expectedTotal: 3,
		},
		{
			name:          "search hits name and category",
			query:         MenuQuery{Search: "cake", Sort: "name", Page: 1},
			expectedNames: []string{"Berry Half Dozen", "Chocolate Silk", "Vanilla Dozen"},
			expectedTotal: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(&mockProductStore{products: menuFixture()})
			// when
			menu, err := service.Menu(context.Background(), tc.query)
			// then
			require.NoError(t, err)
			names := make([]string, len(menu.Items))
			for i, item := range menu.Items {
				names[i] = item.Name
			}
			assert.Equal(t, tc.expectedNames, names)
			assert.Equal(t, tc.expectedTotal, menu.Total)
			assert.Equal(t, []string{"All", "Cakes", "Cupcakes", "Custom Made"}, menu.Facets.Categories)
		})
	}
}

func Test_CatalogService_Menu_FormatsPrices(t *testing.T) {
	// given
	service := NewService(&mockProductStore{products: menuFixture()})
	// when
	menu, err := service.Menu(context.Background(), MenuQuery{Search: "Wedding", Page: 1})
	// then
	require.NoError(t, err)
	require.Len(t, menu.Items, 1)
	assert.Equal(t, "$250.00", menu.Items[0].Price)
	assert.Equal(t, 1, menu.ShowingFrom)
	assert.Equal(t, 1, menu.ShowingTo)
}

func Test_CatalogService_Menu_StoreError(t *testing.T) {
	// given
	errStore := errors.New("store error")
	service := NewService(&mockProductStore{error: errStore})
	// when
	menu, err := service.Menu(context.Background(), MenuQuery{Page: 1})
	// then
	assert.ErrorIs(t, err, errStore)
	assert.Nil(t, menu)
}

func Test_CatalogService_BestSellers(t *testing.T) {
	// given
	service := NewService(&mockProductStore{products: menuFixture()})
	// when
	items, err := service.BestSellers(context.Background())
	// then
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Chocolate Silk", items[0].Name)
	assert.Equal(t, "Vanilla Dozen", items[1].Name)
	assert.Equal(t, "Wedding Tier", items[2].Name)
}

func Test_CatalogService_FindByID(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product found",
			mockStore: &mockProductStore{
				product: store.Product{ID: mockID, Name: "Chocolate Silk", Version: 1},
			},
			expected: &ProductDto{ID: mockID.String(), Name: "Chocolate Silk", Version: 1},
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{error: cerrors.ErrProductNotFound},
			expected:    nil,
			expectError: cerrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindByID(context.Background(), mockID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_CatalogService_Update_InvalidID(t *testing.T) {
	// given
	service := NewService(&mockProductStore{})
	// when
	updated, err := service.Update(context.Background(), ProductDto{ID: "not-a-uuid"})
	// then
	assert.Error(t, err)
	assert.Nil(t, updated)
}
