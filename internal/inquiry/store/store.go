// Package store provides an interface for inquiry storage operations.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Inquiry types. A GENERAL inquiry is a plain contact message; a
// CUSTOM_ORDER inquiry carries the structured cake request details.
const (
	TypeGeneral     = "GENERAL"
	TypeCustomOrder = "CUSTOM_ORDER"
)

// Inquiry statuses.
const (
	StatusOpen     = "OPEN"
	StatusResolved = "RESOLVED"
)

// CustomOrderDetails is the structured part of a custom cake request.
// It is nil for general inquiries.
type CustomOrderDetails struct {
	Occasion string `json:"occasion"`
	CakeSize string `json:"cake_size"`
	Flavor   string `json:"flavor"`
	Servings int    `json:"servings"`
}

// Inquiry is one stored contact or custom-order submission.
type Inquiry struct {
	ID             uuid.UUID
	Type           string
	Name           string
	Email          string
	Phone          string
	EventDate      string
	Message        string
	Details        *CustomOrderDetails
	Status         string
	ResolutionNote string
	ResolvedAt     *time.Time
	CreatedAt      time.Time
}

// CreateParams carries the fields of a new inquiry.
type CreateParams struct {
	Type      string
	Name      string
	Email     string
	Phone     string
	EventDate string
	Message   string
	Details   *CustomOrderDetails
}

// InquiryStore is an interface for inquiry storage operations.
type InquiryStore interface {
	// Create persists a new inquiry with status OPEN.
	Create(ctx context.Context, params CreateParams) (*Inquiry, error)

	// FindByID retrieves a single inquiry by its unique identifier.
	// Returns ErrInquiryNotFound if no inquiry exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Inquiry, error)

	// FindAll returns inquiries newest first, optionally filtered by status.
	// An empty status returns everything.
	FindAll(ctx context.Context, status string) ([]Inquiry, error)

	// Resolve marks an OPEN inquiry RESOLVED with the given note.
	// Returns ErrInquiryNotFound if the inquiry does not exist and
	// ErrAlreadyResolved if it is not open.
	Resolve(ctx context.Context, id uuid.UUID, note string) (*Inquiry, error)
}
