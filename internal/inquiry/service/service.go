// Package service provides the implementation of inquiry-related business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mayasbakes/bakehouse/internal/inquiry/store"
	"github.com/mayasbakes/bakehouse/pkg/messaging"
	"github.com/mayasbakes/bakehouse/pkg/messaging/events"
)

// InquiryService defines the methods for submitting and triaging inquiries.
type InquiryService interface {
	// Submit validates and stores a new inquiry, then publishes an
	// InquiryReceivedEvent. Publish failures do not fail the submission.
	Submit(ctx context.Context, dto InquiryCreateDto) (*InquiryDto, error)

	// FindByID retrieves a single inquiry by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*InquiryDto, error)

	// List returns inquiries newest first, optionally filtered by status.
	List(ctx context.Context, status string) ([]InquiryDto, error)

	// Resolve closes an open inquiry with a note.
	Resolve(ctx context.Context, id uuid.UUID, note string) (*InquiryDto, error)
}

// Service implements InquiryService.
type Service struct {
	repository store.InquiryStore
	publisher  messaging.Publisher
	logger     *slog.Logger
}

// NewService creates a new instance of InquiryService.
func NewService(repo store.InquiryStore, publisher messaging.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		publisher:  publisher,
		logger:     logger,
	}
}

// CustomOrderDto is the structured part of a custom cake request.
type CustomOrderDto struct {
	Occasion string `json:"occasion" validate:"required,max=100"`
	CakeSize string `json:"cake_size" validate:"required,max=50"`
	Flavor   string `json:"flavor"   validate:"required,max=50"`
	Servings int    `json:"servings" validate:"min=1,max=1000"`
}

// InquiryCreateDto represents the data transfer object for submitting an inquiry.
// CustomOrder is required when Type is CUSTOM_ORDER and must be absent otherwise.
type InquiryCreateDto struct {
	Type        string          `json:"type"         validate:"required,oneof=GENERAL CUSTOM_ORDER"`
	Name        string          `json:"name"         validate:"required,max=100"`
	Email       string          `json:"email"        validate:"required,email"`
	Phone       string          `json:"phone"        validate:"max=30"`
	EventDate   string          `json:"event_date"   validate:"omitempty,datetime=2006-01-02"`
	Message     string          `json:"message"      validate:"required,max=2000"`
	CustomOrder *CustomOrderDto `json:"custom_order" validate:"required_if=Type CUSTOM_ORDER,excluded_if=Type GENERAL"`
}

// InquiryDto represents the data transfer object for a stored inquiry.
type InquiryDto struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	EventDate      string          `json:"event_date,omitempty"`
	Message        string          `json:"message"`
	CustomOrder    *CustomOrderDto `json:"custom_order,omitempty"`
	Status         string          `json:"status"`
	ResolutionNote string          `json:"resolution_note,omitempty"`
	ResolvedAt     string          `json:"resolved_at,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

// Submit stores a new inquiry and publishes an InquiryReceivedEvent.
func (s *Service) Submit(ctx context.Context, dto InquiryCreateDto) (*InquiryDto, error) {
	var details *store.CustomOrderDetails
	if dto.CustomOrder != nil {
		details = &store.CustomOrderDetails{
			Occasion: dto.CustomOrder.Occasion,
			CakeSize: dto.CustomOrder.CakeSize,
			Flavor:   dto.CustomOrder.Flavor,
			Servings: dto.CustomOrder.Servings,
		}
	}

	inquiry, err := s.repository.Create(ctx, store.CreateParams{
		Type:      dto.Type,
		Name:      dto.Name,
		Email:     dto.Email,
		Phone:     dto.Phone,
		EventDate: dto.EventDate,
		Message:   dto.Message,
		Details:   details,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	event := events.InquiryReceivedEvent{
		InquiryID: inquiry.ID,
		Type:      inquiry.Type,
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Phone:     inquiry.Phone,
		EventDate: inquiry.EventDate,
		Message:   inquiry.Message,
		CreatedAt: inquiry.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// The inquiry is stored; notification delivery is best effort.
		s.logger.Error("failed to publish inquiry received event", "inquiry_id", inquiry.ID, "error", err)
	}

	return toDto(inquiry), nil
}

// FindByID retrieves an inquiry by its ID.
// Returns ErrInquiryNotFound if no inquiry exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*InquiryDto, error) {
	inquiry, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inquiry by ID %s: %w", id, err)
	}
	return toDto(inquiry), nil
}

// List returns inquiries newest first, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string) ([]InquiryDto, error) {
	inquiries, err := s.repository.FindAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	out := make([]InquiryDto, len(inquiries))
	for i := range inquiries {
		out[i] = *toDto(&inquiries[i])
	}
	return out, nil
}

// Resolve closes an open inquiry with a note.
func (s *Service) Resolve(ctx context.Context, id uuid.UUID, note string) (*InquiryDto, error) {
	inquiry, err := s.repository.Resolve(ctx, id, note)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve inquiry %s: %w", id, err)
	}
	return toDto(inquiry), nil
}

// toDto converts a store.Inquiry to an InquiryDto.
func toDto(inquiry *store.Inquiry) *InquiryDto {
	dto := &InquiryDto{
		ID:             inquiry.ID.String(),
		Type:           inquiry.Type,
		Name:           inquiry.Name,
		Email:          inquiry.Email,
		Phone:          inquiry.Phone,
		EventDate:      inquiry.EventDate,
		Message:        inquiry.Message,
		Status:         inquiry.Status,
		ResolutionNote: inquiry.ResolutionNote,
		CreatedAt:      inquiry.CreatedAt.Format(time.RFC3339),
	}
	if inquiry.Details != nil {
		dto.CustomOrder = &CustomOrderDto{
			Occasion: inquiry.Details.Occasion,
			CakeSize: inquiry.Details.CakeSize,
			Flavor:   inquiry.Details.Flavor,
			Servings: inquiry.Details.Servings,
		}
	}
	if inquiry.ResolvedAt != nil {
		dto.ResolvedAt = inquiry.ResolvedAt.Format(time.RFC3339)
	}
	return dto
}
