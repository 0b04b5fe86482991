package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mayasbakes/bakehouse/internal/gallery/service"
	"github.com/mayasbakes/bakehouse/pkg/web"
)

// GalleryHandler serves the public gallery and the admin sync endpoint.
type GalleryHandler struct {
	service    service.GalleryService
	rootFolder string
	adminToken string
	logger     *slog.Logger
}

// NewGalleryHandler creates a new instance of GalleryHandler with the provided service.
func NewGalleryHandler(service service.GalleryService, rootFolder, adminToken string, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{
		service:    service,
		rootFolder: rootFolder,
		adminToken: adminToken,
		logger:     logger.With("component", "rest.gallery"),
	}
}

// RegisterRoutes registers the HTTP routes for the gallery.
func (h *GalleryHandler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/gallery", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/categories", h.Categories)
	})
	r.Group(func(r chi.Router) {
		r.Use(web.AdminAuth(h.adminToken))
		r.Post("/api/v1/admin/gallery/sync", h.Sync)
	})
}

// List returns gallery images, optionally filtered by category.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	images, err := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error listing gallery", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to list gallery")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, images)
}

// Categories returns the gallery filter options.
func (h *GalleryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error listing gallery categories", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to list gallery categories")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, categories)
}

// Sync pulls the media library into the gallery store.
func (h *GalleryHandler) Sync(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	synced, err := h.service.Sync(r.Context(), h.rootFolder)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error syncing gallery", "error", err)
		web.RespondError(w, mLogger, http.StatusBadGateway, "Failed to sync gallery")
		return
	}
	mLogger.InfoContext(r.Context(), "Gallery synced", "images", synced)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]int{"synced": synced})
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *GalleryHandler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
