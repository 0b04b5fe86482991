package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mayasbakes/bakehouse/internal/cart"
	oerrors "github.com/mayasbakes/bakehouse/internal/order/errors"
	"github.com/mayasbakes/bakehouse/internal/order/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOrderService is a mock implementation of the OrderService interface
type mockOrderService struct {
	order  *service.OrderDto
	orders []service.OrderDto
	error  error
}

func (m *mockOrderService) Checkout(_ context.Context, _ service.CheckoutDto, snapshot cart.CartSnapshot) (*service.OrderDto, error) {
	if len(snapshot.Lines) == 0 {
		return nil, oerrors.ErrEmptyCart
	}
	if m.error != nil {
		return nil, m.error
	}
	return m.order, nil
}

func (m *mockOrderService) FindByID(_ context.Context, _ uuid.UUID) (*service.OrderDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.order, nil
}

func (m *mockOrderService) List(_ context.Context, _ string) ([]service.OrderDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.orders, nil
}

func (m *mockOrderService) UpdateStatus(_ context.Context, _ uuid.UUID, status string) (*service.OrderDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	updated := *m.order
	updated.Status = status
	return &updated, nil
}

func (m *mockOrderService) UpdatePaymentStatus(_ context.Context, _ uuid.UUID, paymentStatus string) (*service.OrderDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	updated := *m.order
	updated.PaymentStatus = paymentStatus
	return &updated, nil
}

func checkoutBody() string {
	return `{"customer_name":"Priya","customer_email":"priya@example.com","pickup_date":"2026-09-15"}`
}

func Test_OrderAPI_Checkout(t *testing.T) {
	// given
	registry := cart.NewRegistry()
	registry.WithCart("test-session", func(c *cart.Cart) {
		c.Add(cart.Line{ProductID: "a", Name: "Chocolate Silk", UnitPriceCents: 45_00, Quantity: 1})
	})
	mockService := &mockOrderService{order: &service.OrderDto{ID: uuid.NewString(), Status: "NEW", PaymentStatus: "PENDING", TotalCents: 45_00}}
	api := NewOrderHandler(mockService, registry, "token", discardLogger())
	rr := httptest.NewRecorder()

	// when
	api.Checkout(rr, sessionRequest(http.MethodPost, "/api/v1/checkout", checkoutBody()))

	// then
	assert.Equal(t, http.StatusCreated, rr.Code)
	// the session cart is cleared after a successful checkout
	assert.Empty(t, registry.Snapshot("test-session").Lines)
}

func Test_OrderAPI_Checkout_EmptyCart(t *testing.T) {
	// given
	api := NewOrderHandler(&mockOrderService{}, cart.NewRegistry(), "token", discardLogger())
	rr := httptest.NewRecorder()

	// when
	api.Checkout(rr, sessionRequest(http.MethodPost, "/api/v1/checkout", checkoutBody()))

	// then
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, toJSON(t, ErrorResponse{Error: "Cart is empty"}), rr.Body.String())
}

func Test_OrderAPI_Checkout_Validation(t *testing.T) {
	// given
	registry := cart.NewRegistry()
	registry.WithCart("test-session", func(c *cart.Cart) {
		c.Add(cart.Line{ProductID: "a", UnitPriceCents: 45_00, Quantity: 1})
	})
	api := NewOrderHandler(&mockOrderService{}, registry, "token", discardLogger())
	body := `{"customer_name":"Priya","customer_email":"not-an-email","pickup_date":"soon"}`
	rr := httptest.NewRecorder()

	// when
	api.Checkout(rr, sessionRequest(http.MethodPost, "/api/v1/checkout", body))

	// then
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "validation_errors")
	// validation failures must not consume the cart
	require.Len(t, registry.Snapshot("test-session").Lines, 1)
}

func Test_OrderAPI_List_InvalidStatus(t *testing.T) {
	// given
	api := NewOrderHandler(&mockOrderService{}, cart.NewRegistry(), "token", discardLogger())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders?status=SHIPPED", nil)
	rr := httptest.NewRecorder()

	// when
	api.List(rr, req)

	// then
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func Test_OrderAPI_UpdateStatus(t *testing.T) {
	mockID := uuid.New()
	testCases := []struct {
		name         string
		mockService  mockOrderService
		body         string
		expectedCode int
	}{
		{
			name:         "Success - confirmed",
			mockService:  mockOrderService{order: &service.OrderDto{ID: mockID.String(), Status: "NEW"}},
			body:         `{"status":"CONFIRMED"}`,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Error - status outside enumeration",
			mockService:  mockOrderService{order: &service.OrderDto{ID: mockID.String(), Status: "NEW"}},
			body:         `{"status":"SHIPPED"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - invalid transition",
			mockService:  mockOrderService{error: oerrors.ErrInvalidTransition},
			body:         `{"status":"COMPLETED"}`,
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Error - order not found",
			mockService:  mockOrderService{error: oerrors.ErrOrderNotFound},
			body:         `{"status":"CONFIRMED"}`,
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := NewOrderHandler(&tc.mockService, cart.NewRegistry(), "token", discardLogger())
			req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/orders/"+mockID.String()+"/status", strings.NewReader(tc.body))
			req.SetPathValue("id", mockID.String())
			rr := httptest.NewRecorder()

			// when
			api.UpdateStatus(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func Test_OrderAPI_UpdatePaymentStatus(t *testing.T) {
	// given
	mockID := uuid.New()
	mockService := &mockOrderService{order: &service.OrderDto{ID: mockID.String(), Status: "NEW", PaymentStatus: "PENDING"}}
	api := NewOrderHandler(mockService, cart.NewRegistry(), "token", discardLogger())
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/orders/"+mockID.String()+"/payment-status", strings.NewReader(`{"payment_status":"PAID"}`))
	req.SetPathValue("id", mockID.String())
	rr := httptest.NewRecorder()

	// when
	api.UpdatePaymentStatus(rr, req)

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"payment_status":"PAID"`)
}
