// Package store provides an interface for order storage operations.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Order statuses.
const (
	StatusNew       = "NEW"
	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// Payment statuses.
const (
	PaymentPending  = "PENDING"
	PaymentPaid     = "PAID"
	PaymentFailed   = "FAILED"
	PaymentRefunded = "REFUNDED"
)

// Order is one stored checkout. TotalCents is computed server side from
// the item lines at creation time.
type Order struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PickupDate    string
	Note          string
	Status        string
	PaymentStatus string
	TotalCents    int64
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem is one product line frozen into an order.
type OrderItem struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	ProductID      string
	Name           string
	UnitPriceCents int64
	Quantity       int
}

// CreateParams carries the fields of a new order.
type CreateParams struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PickupDate    string
	Note          string
	Items         []ItemParams
}

// ItemParams is one line of a new order.
type ItemParams struct {
	ProductID      string
	Name           string
	UnitPriceCents int64
	Quantity       int
}

// OrderStore is an interface for order storage operations.
type OrderStore interface {
	// Create persists an order and its items in one transaction.
	// The order starts as NEW with payment PENDING.
	Create(ctx context.Context, params CreateParams) (*Order, error)

	// FindByID retrieves an order with its items.
	// Returns ErrOrderNotFound if no order exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll returns orders newest first, optionally filtered by status,
	// without their item lines.
	FindAll(ctx context.Context, status string) ([]Order, error)

	// UpdateStatus moves the order from one status to another. The update
	// only applies while the order is still in the from status, so two
	// concurrent updates cannot both win. Returns ErrOrderNotFound if no
	// order exists with the given ID and ErrInvalidTransition if the
	// order has moved on since it was read.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (*Order, error)

	// UpdatePaymentStatus moves the payment status from one value to
	// another, with the same guard semantics as UpdateStatus.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, from, to string) (*Order, error)
}
