// Package service provides the implementation of catalog-related business logic.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mayasbakes/bakehouse/internal/catalog/engine"
	"github.com/mayasbakes/bakehouse/internal/catalog/store"
)

// bestSellerCount is the size of the home-page best sellers strip.
const bestSellerCount = 3

// CatalogService defines the methods for browsing and managing the catalog.
// It abstracts the underlying business logic and data access.
type CatalogService interface {
	// Menu materializes the catalog and runs the browsing pipeline
	// (filter, stable sort, paginate) over it.
	Menu(ctx context.Context, query MenuQuery) (*MenuDto, error)

	// BestSellers returns the most popular products for the home page.
	BestSellers(ctx context.Context) ([]MenuItemDto, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error)

	// Create adds a new product to the catalog.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update modifies an existing product's details.
	// Returns ErrProductNotFound if no product exists with the given ID and version.
	Update(ctx context.Context, product ProductDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID, version int32) error
}

// Service implements CatalogService and provides methods to browse and manage the catalog.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of CatalogService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// MenuQuery carries the raw browsing parameters of one menu request.
// Values outside the closed enumerations degrade to their defaults.
type MenuQuery struct {
	Search   string
	Category string
	Price    string
	Dietary  []string
	Sort     string
	Page     int
}

// MenuItemDto is one product as rendered on the menu grid.
type MenuItemDto struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PriceCents int64    `json:"price_cents"`
	Price      string   `json:"price"`
	Category   string   `json:"category"`
	ImageURL   string   `json:"image_url"`
	Popularity int32    `json:"popularity"`
	Badge      string   `json:"badge,omitempty"`
	Dietary    []string `json:"dietary,omitempty"`
}

// FacetsDto lists the filter options present in the catalog.
type FacetsDto struct {
	Categories []string `json:"categories"`
	Dietary    []string `json:"dietary"`
}

// MenuDto is one page of the filtered, sorted catalog plus the metadata the
// menu UI needs ("showing X-Y of N", pagination, facets).
type MenuDto struct {
	Items       []MenuItemDto `json:"items"`
	Page        int           `json:"page"`
	PageCount   int           `json:"page_count"`
	ShowingFrom int           `json:"showing_from"`
	ShowingTo   int           `json:"showing_to"`
	Total       int           `json:"total"`
	Facets      FacetsDto     `json:"facets"`
}

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	Name       string   `json:"name"        validate:"required,max=100"`
	PriceCents int64    `json:"price_cents" validate:"required,min=0"`
	Category   string   `json:"category"    validate:"required,max=50"`
	ImageURL   string   `json:"image_url"   validate:"omitempty,url"`
	Popularity int32    `json:"popularity"  validate:"min=0,max=100"`
	Badge      string   `json:"badge"       validate:"max=30"`
	Dietary    []string `json:"dietary"     validate:"dive,max=30"`
}

// ProductDto represents the data transfer object for a product.
// Version is read-only and used for optimistic concurrency control.
type ProductDto struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"        validate:"required,max=100"`
	PriceCents int64    `json:"price_cents" validate:"required,min=0"`
	Category   string   `json:"category"    validate:"required,max=50"`
	ImageURL   string   `json:"image_url"   validate:"omitempty,url"`
	Popularity int32    `json:"popularity"  validate:"min=0,max=100"`
	Badge      string   `json:"badge"       validate:"max=30"`
	Dietary    []string `json:"dietary"     validate:"dive,max=30"`
	Version    int32    `json:"version"     validate:"required,min=1"`
}

// Menu materializes the catalog and runs the filter -> sort -> paginate
// pipeline over the in-memory snapshot.
func (s *Service) Menu(ctx context.Context, query MenuQuery) (*MenuDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	f := engine.DefaultFilter()
	f.SetSearch(query.Search)
	if query.Category != "" {
		f.SetCategory(engine.Category(query.Category))
	}
	if query.Price != "" {
		f.SetBand(engine.PriceBand(query.Price))
	}
	f.SetDietary(query.Dietary)
	f.SetSort(engine.ParseSortKey(query.Sort))
	// Page last: the filter mutators above all reset it to 1.
	f.SetPage(query.Page)

	result := engine.Run(toEngine(products), f, engine.DefaultPageSize)

	items := make([]MenuItemDto, len(result.Window.Items))
	for i, p := range result.Window.Items {
		items[i] = toMenuItem(p)
	}

	return &MenuDto{
		Items:       items,
		Page:        result.Window.Page,
		PageCount:   result.Window.PageCount,
		ShowingFrom: result.Window.ShowingFrom,
		ShowingTo:   result.Window.ShowingTo,
		Total:       result.Window.Total,
		Facets: FacetsDto{
			Categories: result.Facets.Categories,
			Dietary:    result.Facets.Dietary,
		},
	}, nil
}

// BestSellers returns the top products by popularity for the home page.
func (s *Service) BestSellers(ctx context.Context) ([]MenuItemDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	list := toEngine(products)
	engine.SortProducts(list, engine.SortPopularity)
	if len(list) > bestSellerCount {
		list = list[:bestSellerCount]
	}

	items := make([]MenuItemDto, len(list))
	for i, p := range list {
		items[i] = toMenuItem(p)
	}
	return items, nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}

	return toDto(product), nil
}

// Create creates a new product and returns it as a ProductDto.
// Returns an error if the product cannot be created.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, store.CreateParams{
		Name:       product.Name,
		PriceCents: product.PriceCents,
		Category:   product.Category,
		ImageURL:   product.ImageURL,
		Popularity: product.Popularity,
		Badge:      product.Badge,
		Dietary:    product.Dietary,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(p), nil
}

// Update modifies an existing product's details and returns the updated product as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID and version.
func (s *Service) Update(ctx context.Context, product ProductDto) (*ProductDto, error) {
	id, err := uuid.Parse(product.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID %q: %w", product.ID, err)
	}

	updated, err := s.repository.Update(ctx, store.UpdateParams{
		ID:         id,
		Name:       product.Name,
		PriceCents: product.PriceCents,
		Category:   product.Category,
		ImageURL:   product.ImageURL,
		Popularity: product.Popularity,
		Badge:      product.Badge,
		Dietary:    product.Dietary,
		Version:    product.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", product.ID, err)
	}

	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID and version.
func (s *Service) DeleteByID(ctx context.Context, id uuid.UUID, version int32) error {
	return s.repository.DeleteByID(ctx, id, version)
}

// toEngine converts catalog rows into the browsing engine's product type.
func toEngine(products []store.Product) []engine.Product {
	out := make([]engine.Product, len(products))
	for i, p := range products {
		out[i] = engine.Product{
			ID:         p.ID.String(),
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Category:   engine.Category(p.Category),
			ImageURL:   p.ImageURL,
			Popularity: int(p.Popularity),
			Badge:      p.Badge,
			Dietary:    p.Dietary,
		}
	}
	return out
}

func toMenuItem(p engine.Product) MenuItemDto {
	return MenuItemDto{
		ID:         p.ID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Price:      engine.FormatUSD(p.PriceCents),
		Category:   string(p.Category),
		ImageURL:   p.ImageURL,
		Popularity: int32(p.Popularity),
		Badge:      p.Badge,
		Dietary:    p.Dietary,
	}
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:         product.ID.String(),
		Name:       product.Name,
		PriceCents: product.PriceCents,
		Category:   product.Category,
		ImageURL:   product.ImageURL,
		Popularity: product.Popularity,
		Badge:      product.Badge,
		Dietary:    product.Dietary,
		Version:    product.Version,
	}
}
