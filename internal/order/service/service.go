// Package service provides the implementation of order-related business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mayasbakes/bakehouse/internal/cart"
	oerrors "github.com/mayasbakes/bakehouse/internal/order/errors"
	"github.com/mayasbakes/bakehouse/internal/order/store"
	"github.com/mayasbakes/bakehouse/pkg/messaging"
	"github.com/mayasbakes/bakehouse/pkg/messaging/events"
)

// Allowed status transitions. Terminal statuses have no successors.
var (
	statusTransitions = map[string][]string{
		store.StatusNew:       {store.StatusConfirmed, store.StatusCancelled},
		store.StatusConfirmed: {store.StatusCompleted, store.StatusCancelled},
	}
	paymentTransitions = map[string][]string{
		store.PaymentPending: {store.PaymentPaid, store.PaymentFailed},
		store.PaymentFailed:  {store.PaymentPaid},
		store.PaymentPaid:    {store.PaymentRefunded},
	}
)

// OrderService defines the methods for creating and managing orders.
type OrderService interface {
	// Checkout freezes the cart snapshot into an order and publishes an
	// OrderCreatedEvent. Returns ErrEmptyCart if the snapshot has no lines.
	Checkout(ctx context.Context, dto CheckoutDto, snapshot cart.CartSnapshot) (*OrderDto, error)

	// FindByID retrieves a single order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*OrderDto, error)

	// List returns orders newest first, optionally filtered by status.
	List(ctx context.Context, status string) ([]OrderDto, error)

	// UpdateStatus moves an order to a new status, enforcing the
	// NEW -> CONFIRMED -> COMPLETED lifecycle with CANCELLED as an exit.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*OrderDto, error)

	// UpdatePaymentStatus moves an order's payment to a new status.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus string) (*OrderDto, error)
}

// Service implements OrderService.
type Service struct {
	repository store.OrderStore
	publisher  messaging.Publisher
	logger     *slog.Logger
}

// NewService creates a new instance of OrderService.
func NewService(repo store.OrderStore, publisher messaging.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		publisher:  publisher,
		logger:     logger,
	}
}

// CheckoutDto represents the customer details of a checkout request.
// The order lines come from the session cart, never from the client.
type CheckoutDto struct {
	CustomerName  string `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"max=30"`
	PickupDate    string `json:"pickup_date"    validate:"required,datetime=2006-01-02"`
	Note          string `json:"note"           validate:"max=500"`
}

// OrderItemDto is one product line of an order.
type OrderItemDto struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// OrderDto represents the data transfer object for an order.
type OrderDto struct {
	ID            string         `json:"id"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	CustomerPhone string         `json:"customer_phone,omitempty"`
	PickupDate    string         `json:"pickup_date"`
	Note          string         `json:"note,omitempty"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"payment_status"`
	TotalCents    int64          `json:"total_cents"`
	Items         []OrderItemDto `json:"items,omitempty"`
	CreatedAt     string         `json:"created_at"`
}

// Checkout freezes the cart snapshot into an order and publishes an OrderCreatedEvent.
func (s *Service) Checkout(ctx context.Context, dto CheckoutDto, snapshot cart.CartSnapshot) (*OrderDto, error) {
	if len(snapshot.Lines) == 0 {
		return nil, oerrors.ErrEmptyCart
	}

	items := make([]store.ItemParams, len(snapshot.Lines))
	for i, l := range snapshot.Lines {
		items[i] = store.ItemParams{
			ProductID:      l.ProductID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		}
	}

	order, err := s.repository.Create(ctx, store.CreateParams{
		CustomerName:  dto.CustomerName,
		CustomerEmail: dto.CustomerEmail,
		CustomerPhone: dto.CustomerPhone,
		PickupDate:    dto.PickupDate,
		Note:          dto.Note,
		Items:         items,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	event := events.OrderCreatedEvent{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		TotalCents:    order.TotalCents,
		ItemCount:     snapshot.ItemCount,
		CreatedAt:     order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// The order is stored; notification delivery is best effort.
		s.logger.Error("failed to publish order created event", "order_id", order.ID, "error", err)
	}

	return toDto(order), nil
}

// FindByID retrieves an order with its items.
// Returns ErrOrderNotFound if no order exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*OrderDto, error) {
	order, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order by ID %s: %w", id, err)
	}
	return toDto(order), nil
}

// List returns orders newest first, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string) ([]OrderDto, error) {
	orders, err := s.repository.FindAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	out := make([]OrderDto, len(orders))
	for i := range orders {
		out[i] = *toDto(&orders[i])
	}
	return out, nil
}

// UpdateStatus moves an order to a new status, enforcing the lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*OrderDto, error) {
	order, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", id, err)
	}
	if !slices.Contains(statusTransitions[order.Status], status) {
		return nil, fmt.Errorf("cannot move order from %s to %s: %w", order.Status, status, oerrors.ErrInvalidTransition)
	}

	// The store re-checks the current status so a concurrent update
	// cannot slip past the validation above.
	updated, err := s.repository.UpdateStatus(ctx, id, order.Status, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return toDto(updated), nil
}

// UpdatePaymentStatus moves an order's payment to a new status.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus string) (*OrderDto, error) {
	order, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", id, err)
	}
	if !slices.Contains(paymentTransitions[order.PaymentStatus], paymentStatus) {
		return nil, fmt.Errorf("cannot move payment from %s to %s: %w", order.PaymentStatus, paymentStatus, oerrors.ErrInvalidTransition)
	}

	updated, err := s.repository.UpdatePaymentStatus(ctx, id, order.PaymentStatus, paymentStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	return toDto(updated), nil
}

// toDto converts a store.Order to an OrderDto.
func toDto(order *store.Order) *OrderDto {
	items := make([]OrderItemDto, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemDto{
			ProductID:      item.ProductID,
			Name:           item.Name,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
		}
	}
	return &OrderDto{
		ID:            order.ID.String(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		PickupDate:    order.PickupDate,
		Note:          order.Note,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		TotalCents:    order.TotalCents,
		Items:         items,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
}
