package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	cerrors "github.com/mayasbakes/bakehouse/internal/catalog/errors"
)

const productColumns = "id, name, price_cents, category, image_url, popularity, badge, dietary, version, created_at"

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// FindAll retrieves the whole catalog ordered by creation time.
// It returns a slice of products, which may be empty if no products exist.
func (p *PgStore) FindAll(ctx context.Context) ([]Product, error) {
	rows, err := p.db.Query(ctx, "SELECT "+productColumns+" FROM products ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	rows, err := p.db.Query(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	product, err := pgx.CollectOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// Create adds a new product to the catalog.
func (p *PgStore) Create(ctx context.Context, params CreateParams) (*Product, error) {
	rows, err := p.db.Query(ctx,
		`INSERT INTO products (name, price_cents, category, image_url, popularity, badge, dietary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+productColumns,
		params.Name, params.PriceCents, params.Category, params.ImageURL, params.Popularity, params.Badge, params.Dietary)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product, err := pgx.CollectOneRow(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// Update modifies an existing product's details.
// Returns ErrProductNotFound if no product exists with the given ID and version.
func (p *PgStore) Update(ctx context.Context, params UpdateParams) (*Product, error) {
	rows, err := p.db.Query(ctx,
		`UPDATE products
		 SET name = $3, price_cents = $4, category = $5, image_url = $6, popularity = $7, badge = $8, dietary = $9,
		     version = version + 1
		 WHERE id = $1 AND version = $2
		 RETURNING `+productColumns,
		params.ID, params.Version,
		params.Name, params.PriceCents, params.Category, params.ImageURL, params.Popularity, params.Badge, params.Dietary)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	product, err := pgx.CollectOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// DeleteByID removes a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID and version.
func (p *PgStore) DeleteByID(ctx context.Context, id uuid.UUID, version int32) error {
	tag, err := p.db.Exec(ctx, "DELETE FROM products WHERE id = $1 AND version = $2", id, version)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cerrors.ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.CollectableRow) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Category, &p.ImageURL, &p.Popularity, &p.Badge, &p.Dietary, &p.Version, &p.CreatedAt)
	return p, err
}
