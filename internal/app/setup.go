// Package app contains the application setup for the bakehouse server.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mayasbakes/bakehouse/internal/cart"
	catalogservice "github.com/mayasbakes/bakehouse/internal/catalog/service"
	catalogstore "github.com/mayasbakes/bakehouse/internal/catalog/store"
	"github.com/mayasbakes/bakehouse/internal/config"
	galleryservice "github.com/mayasbakes/bakehouse/internal/gallery/service"
	gallerystore "github.com/mayasbakes/bakehouse/internal/gallery/store"
	inquiryservice "github.com/mayasbakes/bakehouse/internal/inquiry/service"
	inquirystore "github.com/mayasbakes/bakehouse/internal/inquiry/store"
	orderservice "github.com/mayasbakes/bakehouse/internal/order/service"
	orderstore "github.com/mayasbakes/bakehouse/internal/order/store"
	"github.com/mayasbakes/bakehouse/internal/platform/cloudinary"
	"github.com/mayasbakes/bakehouse/internal/transport/rest"
	"github.com/mayasbakes/bakehouse/pkg/messaging"
	"github.com/mayasbakes/bakehouse/pkg/server"
	"github.com/mayasbakes/bakehouse/pkg/web"
)

// Dependencies bundles the wired services of the storefront server.
type Dependencies struct {
	CatalogService catalogservice.CatalogService
	InquiryService inquiryservice.InquiryService
	OrderService   orderservice.OrderService
	GalleryService galleryservice.GalleryService
	Carts          *cart.Registry
	AdminToken     string
	GalleryRoot    string
	Logger         *slog.Logger
}

// SetupDependencies wires the stores, services and session registry.
func SetupDependencies(dbPool *pgxpool.Pool, publisher messaging.Publisher, cfg *config.Config, logger *slog.Logger) *Dependencies {
	library := cloudinary.NewClient(
		cfg.Gallery.Cloudinary.CloudName,
		cfg.Gallery.Cloudinary.APIKey,
		cfg.Gallery.Cloudinary.APISecret,
	)

	return &Dependencies{
		CatalogService: catalogservice.NewService(catalogstore.NewPgStore(dbPool)),
		InquiryService: inquiryservice.NewService(inquirystore.NewPgStore(dbPool), publisher, logger),
		OrderService:   orderservice.NewService(orderstore.NewPgStore(dbPool), publisher, logger),
		GalleryService: galleryservice.NewService(gallerystore.NewPgStore(dbPool), library, logger),
		Carts:          cart.NewRegistry(),
		AdminToken:     cfg.Admin.Token,
		GalleryRoot:    cfg.Gallery.RootFolder,
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the HTTP router and routes for the server.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	mux.Use(web.SessionInjector)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the server.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	rest.NewCatalogHandler(deps.CatalogService, deps.AdminToken, deps.Logger).RegisterRoutes(mux)
	rest.NewCartHandler(deps.Carts, deps.CatalogService, deps.Logger).RegisterRoutes(mux)
	rest.NewInquiryHandler(deps.InquiryService, deps.AdminToken, deps.Logger).RegisterRoutes(mux)
	rest.NewOrderHandler(deps.OrderService, deps.Carts, deps.AdminToken, deps.Logger).RegisterRoutes(mux)
	rest.NewGalleryHandler(deps.GalleryService, deps.GalleryRoot, deps.AdminToken, deps.Logger).RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
