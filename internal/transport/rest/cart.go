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
	"github.com/google/uuid"
	"github.com/mayasbakes/bakehouse/internal/cart"
	cerrors "github.com/mayasbakes/bakehouse/internal/catalog/errors"
	"github.com/mayasbakes/bakehouse/internal/catalog/service"
	"github.com/mayasbakes/bakehouse/pkg/web"
)

// CartHandler serves the session cart endpoints. Line snapshots come from
// the catalog at add time; the client only names a product and quantity.
type CartHandler struct {
	carts    *cart.Registry
	catalog  service.CatalogService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCartHandler creates a new instance of CartHandler.
func NewCartHandler(carts *cart.Registry, catalog service.CatalogService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:    carts,
		catalog:  catalog,
		validate: validator.New(),
		logger:   logger.With("component", "rest.cart"),
	}
}

// RegisterRoutes registers the HTTP routes for the cart.
func (h *CartHandler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/items", h.AddItem)
		r.Put("/items/{productID}", h.SetQuantity)
		r.Delete("/items/{productID}", h.RemoveItem)
	})
}

// cartAddDto is the request body for adding a product to the cart.
type cartAddDto struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"min=1,max=100"`
}

// cartQuantityDto is the request body for replacing a line quantity.
type cartQuantityDto struct {
	Quantity int `json:"quantity" validate:"min=0,max=100"`
}

// Get returns the session's cart snapshot.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := h.sessionID(w, r, mLogger)
	if !ok {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, h.carts.Snapshot(sessionID))
}

// AddItem looks the product up in the catalog and merges it into the cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := h.sessionID(w, r, mLogger)
	if !ok {
		return
	}

	var dto cartAddDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if dto.Quantity == 0 {
		dto.Quantity = 1
	}
	if !validateStruct(w, r, mLogger, h.validate, dto) {
		return
	}

	productID, err := uuid.Parse(dto.ProductID)
	if err != nil {
		web.RespondError(w, mLogger, http.StatusBadRequest, fmt.Sprintf("Invalid product ID: %s", dto.ProductID))
		return
	}
	product, err := h.catalog.FindByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for cart add", "ID", productID)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", productID))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error looking up product for cart add", "ID", productID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to add product to cart")
		return
	}

	h.carts.WithCart(sessionID, func(c *cart.Cart) {
		c.Add(cart.Line{
			ProductID:      product.ID,
			Name:           product.Name,
			UnitPriceCents: product.PriceCents,
			ImageURL:       product.ImageURL,
			Quantity:       dto.Quantity,
		})
	})
	mLogger.InfoContext(r.Context(), "Added product to cart", "product_id", product.ID, "quantity", dto.Quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, h.carts.Snapshot(sessionID))
}

// SetQuantity replaces a line's quantity. Zero removes the line.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := h.sessionID(w, r, mLogger)
	if !ok {
		return
	}

	var dto cartQuantityDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateStruct(w, r, mLogger, h.validate, dto) {
		return
	}

	productID := r.PathValue("productID")
	h.carts.WithCart(sessionID, func(c *cart.Cart) {
		c.SetQuantity(productID, dto.Quantity)
	})
	web.RespondJSON(w, mLogger, http.StatusOK, h.carts.Snapshot(sessionID))
}

// RemoveItem drops a line from the cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := h.sessionID(w, r, mLogger)
	if !ok {
		return
	}

	productID := r.PathValue("productID")
	h.carts.WithCart(sessionID, func(c *cart.Cart) {
		c.Remove(productID)
	})
	web.RespondJSON(w, mLogger, http.StatusOK, h.carts.Snapshot(sessionID))
}

// Clear empties the session's cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := h.sessionID(w, r, mLogger)
	if !ok {
		return
	}

	h.carts.Drop(sessionID)
	web.RespondJSON(w, mLogger, http.StatusOK, h.carts.Snapshot(sessionID))
}

func (h *CartHandler) sessionID(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger) (string, bool) {
	sessionID, ok := web.GetSessionID(r.Context())
	if !ok {
		mLogger.ErrorContext(r.Context(), "Missing session ID in context")
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Session not initialized")
		return "", false
	}
	return sessionID, true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *CartHandler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
