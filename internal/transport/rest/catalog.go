// Package rest provides the HTTP handlers for the bakehouse storefront.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	cerrors "github.com/mayasbakes/bakehouse/internal/catalog/errors"
	"github.com/mayasbakes/bakehouse/internal/catalog/service"
	"github.com/mayasbakes/bakehouse/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// CatalogHandler serves the public menu and the admin product endpoints.
type CatalogHandler struct {
	service    service.CatalogService
	validate   *validator.Validate
	adminToken string
	logger     *slog.Logger
}

// NewCatalogHandler creates a new instance of CatalogHandler with the provided service.
func NewCatalogHandler(service service.CatalogService, adminToken string, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:    service,
		validate:   validator.New(),
		adminToken: adminToken,
		logger:     logger.With("component", "rest.catalog"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog.
func (h *CatalogHandler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/menu", h.Menu)
		r.Get("/products/best-sellers", h.BestSellers)
		r.Get("/products/{id}", h.FindByID)
	})
	r.Group(func(r chi.Router) {
		r.Use(web.AdminAuth(h.adminToken))
		r.Route("/api/v1/admin/products", func(r chi.Router) {
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.DeleteByID)
		})
	})
	r.Get("/healthz", h.HealthCheck)
}

// Menu runs the browsing pipeline over the catalog and returns one page.
// Unknown filter or sort values fall back to their defaults.
func (h *CatalogHandler) Menu(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	query := service.MenuQuery{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Price:    r.URL.Query().Get("price"),
		Sort:     r.URL.Query().Get("sort"),
		Page:     1,
	}
	if dietary, ok := r.URL.Query()["dietary"]; ok {
		query.Dietary = dietary
	}
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil {
			web.RespondError(w, mLogger, http.StatusBadRequest, fmt.Sprintf("Invalid page number: %s", pageParam))
			return
		}
		query.Page = page
	}

	mLogger.DebugContext(r.Context(), "Received menu request", "query", query)
	menu, err := h.service.Menu(r.Context(), query)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error building menu", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to build menu")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, menu)
}

// BestSellers returns the most popular products for the home page.
func (h *CatalogHandler) BestSellers(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	items, err := h.service.BestSellers(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error fetching best sellers", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch best sellers")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, items)
}

// FindByID retrieves a product by its ID.
func (h *CatalogHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Create handles the creation of a new product.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto service.ProductCreateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateStruct(w, r, mLogger, h.validate, dto) {
		return
	}

	created, err := h.service.Create(r.Context(), dto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating product", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create product")
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", slog.String("ID", created.ID))
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// Update modifies an existing product.
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	var dto service.ProductDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	dto.ID = id.String()
	if !validateStruct(w, r, mLogger, h.validate, dto) {
		return
	}

	updated, err := h.service.Update(r.Context(), dto)
	if err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusConflict, fmt.Sprintf("Product with ID %s not found or modified concurrently", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update product with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", slog.String("ID", updated.ID))
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteByID removes a product. The current version must be passed as a
// query parameter to guard against concurrent edits.
func (h *CatalogHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	version, ok := web.ParseValidateGt(r, w, mLogger, "version", 0)
	if !ok {
		return
	}

	if err := h.service.DeleteByID(r.Context(), id, version); err != nil {
		if errors.Is(err, cerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for delete", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete product with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", slog.String("ID", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck is a simple health check endpoint.
func (h *CatalogHandler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *CatalogHandler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
