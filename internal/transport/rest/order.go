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
	"github.com/mayasbakes/bakehouse/internal/cart"
	oerrors "github.com/mayasbakes/bakehouse/internal/order/errors"
	"github.com/mayasbakes/bakehouse/internal/order/service"
	"github.com/mayasbakes/bakehouse/internal/order/store"
	"github.com/mayasbakes/bakehouse/pkg/web"
)

// OrderHandler serves checkout and the admin order endpoints.
type OrderHandler struct {
	service    service.OrderService
	carts      *cart.Registry
	validate   *validator.Validate
	adminToken string
	logger     *slog.Logger
}

// NewOrderHandler creates a new instance of OrderHandler with the provided service.
func NewOrderHandler(service service.OrderService, carts *cart.Registry, adminToken string, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service:    service,
		carts:      carts,
		validate:   validator.New(),
		adminToken: adminToken,
		logger:     logger.With("component", "rest.order"),
	}
}

// RegisterRoutes registers the HTTP routes for orders.
func (h *OrderHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/checkout", h.Checkout)
	r.Group(func(r chi.Router) {
		r.Use(web.AdminAuth(h.adminToken))
		r.Route("/api/v1/admin/orders", func(r chi.Router) {
			r.Get("/", h.List)
			r.Get("/{id}", h.FindByID)
			r.Put("/{id}/status", h.UpdateStatus)
			r.Put("/{id}/payment-status", h.UpdatePaymentStatus)
		})
	})
}

// statusDto is the request body for a status change.
type statusDto struct {
	Status string `json:"status" validate:"required,oneof=NEW CONFIRMED COMPLETED CANCELLED"`
}

// paymentStatusDto is the request body for a payment status change.
type paymentStatusDto struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=PENDING PAID FAILED REFUNDED"`
}

// Checkout freezes the session cart into an order. The cart is cleared
// only after the order is stored.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(r.Context())
	if !ok {
		mLogger.ErrorContext(r.Context(), "Missing session ID in context")
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Session not initialized")
		return
	}

	var dto service.CheckoutDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateStruct(w, r, mLogger, h.validate, dto) {
		return
	}

	created, err := h.service.Checkout(r.Context(), dto, h.carts.Snapshot(sessionID))
	if err != nil {
		if errors.Is(err, oerrors.ErrEmptyCart) {
			mLogger.WarnContext(r.Context(), "Checkout with empty cart")
			web.RespondError(w, mLogger, http.StatusBadRequest, "Cart is empty")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error creating order", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create order")
		return
	}

	h.carts.Drop(sessionID)
	mLogger.InfoContext(r.Context(), "Order created successfully", slog.String("ID", created.ID))
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// List returns orders newest first, optionally filtered by status.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	status := r.URL.Query().Get("status")
	switch status {
	case "", store.StatusNew, store.StatusConfirmed, store.StatusCompleted, store.StatusCancelled:
	default:
		web.RespondError(w, mLogger, http.StatusBadRequest, fmt.Sprintf("Invalid status: %s", status))
		return
	}

	list, err := h.service.List(r.Context(), status)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error listing orders", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to list orders")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindByID retrieves an order with its items.
func (h *OrderHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, oerrors.ErrOrderNotFound) {
			mLogger.WarnContext(r.Context(), "Order not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Order with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving order", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve order with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// UpdateStatus moves an order through its lifecycle.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	var dto statusDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateStruct(w, r, mLogger, h.validate, dto) {
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), id, dto.Status)
	h.respondStatusUpdate(w, r, mLogger, id.String(), updated, err)
}

// UpdatePaymentStatus moves an order's payment through its lifecycle.
func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	var dto paymentStatusDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateStruct(w, r, mLogger, h.validate, dto) {
		return
	}

	updated, err := h.service.UpdatePaymentStatus(r.Context(), id, dto.PaymentStatus)
	h.respondStatusUpdate(w, r, mLogger, id.String(), updated, err)
}

func (h *OrderHandler) respondStatusUpdate(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, id string, updated *service.OrderDto, err error) {
	if err != nil {
		if errors.Is(err, oerrors.ErrOrderNotFound) {
			mLogger.WarnContext(r.Context(), "Order not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Order with ID %s not found", id))
			return
		}
		if errors.Is(err, oerrors.ErrInvalidTransition) {
			mLogger.WarnContext(r.Context(), "Invalid status transition", "ID", id, "error", err)
			web.RespondError(w, mLogger, http.StatusConflict, err.Error())
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating order", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update order with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Order updated successfully", slog.String("ID", updated.ID))
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *OrderHandler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
