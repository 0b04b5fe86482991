package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	cerrors "github.com/mayasbakes/bakehouse/internal/catalog/errors"
	"github.com/mayasbakes/bakehouse/internal/catalog/service"
	"github.com/stretchr/testify/assert"
)

// mockCatalogService is a mock implementation of the CatalogService interface
type mockCatalogService struct {
	menu    *service.MenuDto
	items   []service.MenuItemDto
	product *service.ProductDto
	error   error
}

func (m *mockCatalogService) Menu(_ context.Context, _ service.MenuQuery) (*service.MenuDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.menu, nil
}

func (m *mockCatalogService) BestSellers(_ context.Context) ([]service.MenuItemDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.items, nil
}

func (m *mockCatalogService) FindByID(_ context.Context, _ uuid.UUID) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockCatalogService) Create(_ context.Context, _ service.ProductCreateDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockCatalogService) Update(_ context.Context, _ service.ProductDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockCatalogService) DeleteByID(_ context.Context, _ uuid.UUID, _ int32) error {
	return m.error
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// toJSON is a helper function to convert a struct to JSON string
func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	bytes, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal to JSON: %v", err)
	}
	return string(bytes)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func Test_CatalogAPI_Menu(t *testing.T) {
	menu := &service.MenuDto{
		Items:       []service.MenuItemDto{{ID: uuid.NewString(), Name: "Chocolate Silk", PriceCents: 45_00, Price: "$45.00"}},
		Page:        1,
		PageCount:   1,
		ShowingFrom: 1,
		ShowingTo:   1,
		Total:       1,
		Facets:      service.FacetsDto{Categories: []string{"All", "Cakes"}, Dietary: []string{"Eggless"}},
	}
	testCases := []struct {
		name         string
		mockService  mockCatalogService
		target       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - menu page",
			mockService:  mockCatalogService{menu: menu},
			target:       "/api/v1/menu?category=Cakes&sort=priceLow&page=1",
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, menu),
		},
		{
			name:         "Error - page is not a number",
			mockService:  mockCatalogService{menu: menu},
			target:       "/api/v1/menu?page=abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid page number: abc"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockCatalogService{error: errors.New("boom")},
			target:       "/api/v1/menu",
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to build menu"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := NewCatalogHandler(&tc.mockService, "token", discardLogger())
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			// when
			api.Menu(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_CatalogAPI_FindByID(t *testing.T) {
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	product := &service.ProductDto{ID: mockID.String(), Name: "Chocolate Silk", PriceCents: 45_00, Category: "Cakes", Version: 1}
	testCases := []struct {
		name         string
		mockService  mockCatalogService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product found",
			mockService:  mockCatalogService{product: product},
			productID:    mockID.String(),
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, product),
		},
		{
			name:         "Error - invalid id",
			mockService:  mockCatalogService{},
			productID:    "123-invalid-id",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid ID: 123-invalid-id"}),
		},
		{
			name:         "Error - product not found",
			mockService:  mockCatalogService{error: cerrors.ErrProductNotFound},
			productID:    mockID.String(),
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with ID " + mockID.String() + " not found"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := NewCatalogHandler(&tc.mockService, "token", discardLogger())
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			api.FindByID(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_CatalogAPI_Create_Validation(t *testing.T) {
	// given
	api := NewCatalogHandler(&mockCatalogService{}, "token", discardLogger())
	body := `{"name":"","price_cents":0,"category":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", strings.NewReader(body))
	rr := httptest.NewRecorder()

	// when
	api.Create(rr, req)

	// then
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "validation_errors")
}

func Test_CatalogAPI_Update_Conflict(t *testing.T) {
	// given
	mockID := uuid.New()
	api := NewCatalogHandler(&mockCatalogService{error: cerrors.ErrProductNotFound}, "token", discardLogger())
	body := toJSON(t, service.ProductDto{
		ID: mockID.String(), Name: "Chocolate Silk", PriceCents: 45_00, Category: "Cakes", Version: 1,
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/products/"+mockID.String(), strings.NewReader(body))
	req.SetPathValue("id", mockID.String())
	rr := httptest.NewRecorder()

	// when
	api.Update(rr, req)

	// then
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func Test_CatalogAPI_DeleteByID(t *testing.T) {
	// given
	mockID := uuid.New()
	api := NewCatalogHandler(&mockCatalogService{}, "token", discardLogger())
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/"+mockID.String()+"?version=1", nil)
	req.SetPathValue("id", mockID.String())
	rr := httptest.NewRecorder()

	// when
	api.DeleteByID(rr, req)

	// then
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
