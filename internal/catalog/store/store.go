// Package store provides an interface for catalog storage operations.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog row. Version is used for optimistic concurrency
// control on admin mutations.
type Product struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Category   string
	ImageURL   string
	Popularity int32
	Badge      string
	Dietary    []string
	Version    int32
	CreatedAt  time.Time
}

// CreateParams carries the fields of a new catalog entry.
type CreateParams struct {
	Name       string
	PriceCents int64
	Category   string
	ImageURL   string
	Popularity int32
	Badge      string
	Dietary    []string
}

// UpdateParams carries a full product update guarded by Version.
type UpdateParams struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Category   string
	ImageURL   string
	Popularity int32
	Badge      string
	Dietary    []string
	Version    int32
}

// ProductStore is an interface for catalog storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindAll returns the whole catalog ordered by creation time.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// Create adds a new product to the catalog.
	Create(ctx context.Context, params CreateParams) (*Product, error)

	// Update modifies an existing product's details.
	// Returns ErrProductNotFound if no product exists with the given ID and version.
	Update(ctx context.Context, params UpdateParams) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID and version.
	DeleteByID(ctx context.Context, id uuid.UUID, version int32) error
}
