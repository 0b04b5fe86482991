package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	ierrors "github.com/mayasbakes/bakehouse/internal/inquiry/errors"
	"github.com/mayasbakes/bakehouse/internal/inquiry/service"
	"github.com/mayasbakes/bakehouse/internal/inquiry/store"
	"github.com/mayasbakes/bakehouse/pkg/web"
)

// InquiryHandler serves the public inquiry form and the admin triage endpoints.
type InquiryHandler struct {
	service    service.InquiryService
	validate   *validator.Validate
	adminToken string
	logger     *slog.Logger
}

// NewInquiryHandler creates a new instance of InquiryHandler with the provided service.
func NewInquiryHandler(service service.InquiryService, adminToken string, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{
		service:    service,
		validate:   validator.New(),
		adminToken: adminToken,
		logger:     logger.With("component", "rest.inquiry"),
	}
}

// RegisterRoutes registers the HTTP routes for inquiries.
func (h *InquiryHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/inquiries", h.Submit)
	r.Group(func(r chi.Router) {
		r.Use(web.AdminAuth(h.adminToken))
		r.Route("/api/v1/admin/inquiries", func(r chi.Router) {
			r.Get("/", h.List)
			r.Get("/{id}", h.FindByID)
			r.Post("/{id}/resolve", h.Resolve)
		})
	})
}

// resolveDto is the request body for closing an inquiry.
type resolveDto struct {
	Note string `json:"note" validate:"required,max=1000"`
}

// Submit accepts a contact or custom-order inquiry from the storefront.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto service.InquiryCreateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateStruct(w, r, mLogger, h.validate, dto) {
		return
	}

	created, err := h.service.Submit(r.Context(), dto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error submitting inquiry", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to submit inquiry")
		return
	}
	mLogger.InfoContext(r.Context(), "Inquiry submitted", slog.String("ID", created.ID), slog.String("type", created.Type))
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// List returns inquiries newest first, optionally filtered by status.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	status := r.URL.Query().Get("status")
	if status != "" && status != store.StatusOpen && status != store.StatusResolved {
		web.RespondError(w, mLogger, http.StatusBadRequest, fmt.Sprintf("Invalid status: %s", status))
		return
	}

	list, err := h.service.List(r.Context(), status)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error listing inquiries", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to list inquiries")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindByID retrieves an inquiry by its ID.
func (h *InquiryHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ierrors.ErrInquiryNotFound) {
			mLogger.WarnContext(r.Context(), "Inquiry not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Inquiry with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving inquiry", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve inquiry with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Resolve closes an open inquiry with a note.
func (h *InquiryHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	var dto resolveDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateStruct(w, r, mLogger, h.validate, dto) {
		return
	}

	resolved, err := h.service.Resolve(r.Context(), id, dto.Note)
	if err != nil {
		if errors.Is(err, ierrors.ErrInquiryNotFound) {
			mLogger.WarnContext(r.Context(), "Inquiry not found for resolve", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Inquiry with ID %s not found", id))
			return
		}
		if errors.Is(err, ierrors.ErrAlreadyResolved) {
			mLogger.WarnContext(r.Context(), "Inquiry already resolved", "ID", id)
			web.RespondError(w, mLogger, http.StatusConflict, fmt.Sprintf("Inquiry with ID %s is already resolved", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error resolving inquiry", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to resolve inquiry with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Inquiry resolved", slog.String("ID", resolved.ID))
	web.RespondJSON(w, mLogger, http.StatusOK, resolved)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *InquiryHandler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
