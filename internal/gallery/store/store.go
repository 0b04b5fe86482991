// Package store provides an interface for gallery storage operations.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Image is one stored gallery photo. ImageURL is unique; re-syncing the
// same asset updates the existing row.
type Image struct {
	ID        uuid.UUID
	Title     string
	ImageURL  string
	Category  string
	CreatedAt time.Time
}

// UpsertParams carries one synced gallery image.
type UpsertParams struct {
	Title    string
	ImageURL string
	Category string
}

// GalleryStore is an interface for gallery storage operations.
type GalleryStore interface {
	// Upsert inserts the image or, when one with the same URL exists,
	// updates its title and category.
	Upsert(ctx context.Context, params UpsertParams) (*Image, error)

	// List returns images newest first, optionally filtered by category.
	// An empty category or "All" returns everything.
	List(ctx context.Context, category string) ([]Image, error)

	// Categories returns the distinct categories with "All" prepended.
	Categories(ctx context.Context) ([]string, error)
}
