package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mayasbakes/bakehouse/internal/cart"
	oerrors "github.com/mayasbakes/bakehouse/internal/order/errors"
	"github.com/mayasbakes/bakehouse/internal/order/store"
	"github.com/mayasbakes/bakehouse/pkg/messaging"
	"github.com/mayasbakes/bakehouse/pkg/messaging/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOrderStore is a mock implementation of the OrderStore interface
type mockOrderStore struct {
	order  store.Order
	orders []store.Order
	error  error
}

func (m *mockOrderStore) Create(_ context.Context, params store.CreateParams) (*store.Order, error) {
	if m.error != nil {
		return nil, m.error
	}
	var total int64
	items := make([]store.OrderItem, len(params.Items))
	for i, item := range params.Items {
		total += item.UnitPriceCents * int64(item.Quantity)
		items[i] = store.OrderItem{
			ID:             uuid.New(),
			ProductID:      item.ProductID,
			Name:           item.Name,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
		}
	}
	created := store.Order{
		ID:            uuid.New(),
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		PickupDate:    params.PickupDate,
		Status:        store.StatusNew,
		PaymentStatus: store.PaymentPending,
		TotalCents:    total,
		Items:         items,
		CreatedAt:     time.Now(),
	}
	m.order = created
	return &created, nil
}

func (m *mockOrderStore) FindByID(_ context.Context, _ uuid.UUID) (*store.Order, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.order, nil
}

func (m *mockOrderStore) FindAll(_ context.Context, _ string) ([]store.Order, error) {
	return m.orders, m.error
}

func (m *mockOrderStore) UpdateStatus(_ context.Context, _ uuid.UUID, from, to string) (*store.Order, error) {
	if m.error != nil {
		return nil, m.error
	}
	if m.order.Status != from {
		return nil, oerrors.ErrInvalidTransition
	}
	updated := m.order
	updated.Status = to
	return &updated, nil
}

func (m *mockOrderStore) UpdatePaymentStatus(_ context.Context, _ uuid.UUID, from, to string) (*store.Order, error) {
	if m.error != nil {
		return nil, m.error
	}
	if m.order.PaymentStatus != from {
		return nil, oerrors.ErrInvalidTransition
	}
	updated := m.order
	updated.PaymentStatus = to
	return &updated, nil
}

// mockPublisher records published events.
type mockPublisher struct {
	events []messaging.Event
	error  error
}

func (m *mockPublisher) Publish(_ context.Context, event messaging.Event) error {
	if m.error != nil {
		return m.error
	}
	m.events = append(m.events, event)
	return nil
}

func checkoutFixture() CheckoutDto {
	return CheckoutDto{
		CustomerName:  "Priya",
		CustomerEmail: "priya@example.com",
		PickupDate:    "2026-09-15",
	}
}

func snapshotFixture() cart.CartSnapshot {
	return cart.CartSnapshot{
		Lines: []cart.Line{
			{ProductID: "a", Name: "Chocolate Silk", UnitPriceCents: 45_00, Quantity: 1},
			{ProductID: "b", Name: "Vanilla Dozen", UnitPriceCents: 30_00, Quantity: 2},
		},
		SubtotalCents: 105_00,
		ItemCount:     3,
	}
}

func Test_OrderService_Checkout(t *testing.T) {
	// given
	publisher := &mockPublisher{}
	service := NewService(&mockOrderStore{}, publisher, slog.Default())
	// when
	created, err := service.Checkout(context.Background(), checkoutFixture(), snapshotFixture())
	// then
	require.NoError(t, err)
	assert.Equal(t, store.StatusNew, created.Status)
	assert.Equal(t, store.PaymentPending, created.PaymentStatus)
	// total recomputed from the lines, not taken from the snapshot
	assert.Equal(t, int64(105_00), created.TotalCents)
	require.Len(t, created.Items, 2)

	require.Len(t, publisher.events, 1)
	event, ok := publisher.events[0].(events.OrderCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, messaging.OrderCreatedSubject, event.Subject())
	assert.Equal(t, int64(105_00), event.TotalCents)
	assert.Equal(t, 3, event.ItemCount)
}

func Test_OrderService_Checkout_EmptyCart(t *testing.T) {
	// given
	publisher := &mockPublisher{}
	service := NewService(&mockOrderStore{}, publisher, slog.Default())
	// when
	created, err := service.Checkout(context.Background(), checkoutFixture(), cart.CartSnapshot{})
	// then
	assert.ErrorIs(t, err, oerrors.ErrEmptyCart)
	assert.Nil(t, created)
	assert.Empty(t, publisher.events)
}

func Test_OrderService_Checkout_PublishFailureDoesNotFail(t *testing.T) {
	// given
	publisher := &mockPublisher{error: errors.New("nats down")}
	service := NewService(&mockOrderStore{}, publisher, slog.Default())
	// when
	created, err := service.Checkout(context.Background(), checkoutFixture(), snapshotFixture())
	// then
	require.NoError(t, err)
	assert.NotNil(t, created)
}

func Test_OrderService_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name        string
		current     string
		next        string
		expectError error
	}{
		{name: "new to confirmed", current: store.StatusNew, next: store.StatusConfirmed},
		{name: "new to cancelled", current: store.StatusNew, next: store.StatusCancelled},
		{name: "confirmed to completed", current: store.StatusConfirmed, next: store.StatusCompleted},
		{name: "new to completed is forbidden", current: store.StatusNew, next: store.StatusCompleted, expectError: oerrors.ErrInvalidTransition},
		{name: "completed is terminal", current: store.StatusCompleted, next: store.StatusCancelled, expectError: oerrors.ErrInvalidTransition},
		{name: "cancelled is terminal", current: store.StatusCancelled, next: store.StatusConfirmed, expectError: oerrors.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockStore := &mockOrderStore{order: store.Order{ID: uuid.New(), Status: tc.current, PaymentStatus: store.PaymentPending}}
			service := NewService(mockStore, &mockPublisher{}, slog.Default())
			// when
			updated, err := service.UpdateStatus(context.Background(), mockStore.order.ID, tc.next)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.next, updated.Status)
		})
	}
}

func Test_OrderService_UpdatePaymentStatus(t *testing.T) {
	testCases := []struct {
		name        string
		current     string
		next        string
		expectError error
	}{
		{name: "pending to paid", current: store.PaymentPending, next: store.PaymentPaid},
		{name: "pending to failed", current: store.PaymentPending, next: store.PaymentFailed},
		{name: "failed retried to paid", current: store.PaymentFailed, next: store.PaymentPaid},
		{name: "paid to refunded", current: store.PaymentPaid, next: store.PaymentRefunded},
		{name: "pending to refunded is forbidden", current: store.PaymentPending, next: store.PaymentRefunded, expectError: oerrors.ErrInvalidTransition},
		{name: "refunded is terminal", current: store.PaymentRefunded, next: store.PaymentPaid, expectError: oerrors.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockStore := &mockOrderStore{order: store.Order{ID: uuid.New(), Status: store.StatusNew, PaymentStatus: tc.current}}
			service := NewService(mockStore, &mockPublisher{}, slog.Default())
			// when
			updated, err := service.UpdatePaymentStatus(context.Background(), mockStore.order.ID, tc.next)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.next, updated.PaymentStatus)
		})
	}
}

func Test_OrderService_FindByID_NotFound(t *testing.T) {
	// given
	service := NewService(&mockOrderStore{error: oerrors.ErrOrderNotFound}, &mockPublisher{}, slog.Default())
	// when
	found, err := service.FindByID(context.Background(), uuid.New())
	// then
	assert.ErrorIs(t, err, oerrors.ErrOrderNotFound)
	assert.Nil(t, found)
}
