package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const imageColumns = "id, title, image_url, category, created_at"

// PgStore implements GalleryStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of GalleryStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// Upsert inserts the image or updates the row with the same URL.
func (p *PgStore) Upsert(ctx context.Context, params UpsertParams) (*Image, error) {
	rows, err := p.db.Query(ctx,
		`INSERT INTO gallery_images (title, image_url, category)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (image_url) DO UPDATE SET title = EXCLUDED.title, category = EXCLUDED.category
		 RETURNING `+imageColumns,
		params.Title, params.ImageURL, params.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert gallery image: %w", err)
	}
	image, err := pgx.CollectOneRow(rows, scanImage)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert gallery image: %w", err)
	}
	return &image, nil
}

// List returns images newest first, optionally filtered by category.
func (p *PgStore) List(ctx context.Context, category string) ([]Image, error) {
	var rows pgx.Rows
	var err error
	if category == "" || category == "All" {
		rows, err = p.db.Query(ctx, "SELECT "+imageColumns+" FROM gallery_images ORDER BY created_at DESC, id")
	} else {
		rows, err = p.db.Query(ctx, "SELECT "+imageColumns+" FROM gallery_images WHERE category = $1 ORDER BY created_at DESC, id", category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	images, err := pgx.CollectRows(rows, scanImage)
	if err != nil {
		return nil, fmt.Errorf("failed to scan gallery images: %w", err)
	}
	return images, nil
}

// Categories returns the distinct categories with "All" prepended.
func (p *PgStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := p.db.Query(ctx, "SELECT DISTINCT category FROM gallery_images ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery categories: %w", err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan gallery categories: %w", err)
	}
	return append([]string{"All"}, categories...), nil
}

func scanImage(row pgx.CollectableRow) (Image, error) {
	var i Image
	err := row.Scan(&i.ID, &i.Title, &i.ImageURL, &i.Category, &i.CreatedAt)
	return i, err
}
