package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	ierrors "github.com/mayasbakes/bakehouse/internal/inquiry/errors"
)

const inquiryColumns = "id, type, name, email, phone, event_date, message, details, status, resolution_note, resolved_at, created_at"

// PgStore implements InquiryStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of InquiryStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// Create persists a new inquiry with status OPEN.
func (p *PgStore) Create(ctx context.Context, params CreateParams) (*Inquiry, error) {
	rows, err := p.db.Query(ctx,
		`INSERT INTO inquiries (type, name, email, phone, event_date, message, details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+inquiryColumns,
		params.Type, params.Name, params.Email, params.Phone, params.EventDate, params.Message, params.Details)
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}
	inquiry, err := pgx.CollectOneRow(rows, scanInquiry)
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return &inquiry, nil
}

// FindByID retrieves an inquiry by its unique identifier.
// Returns ErrInquiryNotFound if no inquiry exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	rows, err := p.db.Query(ctx, "SELECT "+inquiryColumns+" FROM inquiries WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to find inquiry by ID: %w", err)
	}
	inquiry, err := pgx.CollectOneRow(rows, scanInquiry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ierrors.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to find inquiry by ID: %w", err)
	}
	return &inquiry, nil
}

// FindAll returns inquiries newest first, optionally filtered by status.
func (p *PgStore) FindAll(ctx context.Context, status string) ([]Inquiry, error) {
	var rows pgx.Rows
	var err error
	if status == "" {
		rows, err = p.db.Query(ctx, "SELECT "+inquiryColumns+" FROM inquiries ORDER BY created_at DESC, id")
	} else {
		rows, err = p.db.Query(ctx, "SELECT "+inquiryColumns+" FROM inquiries WHERE status = $1 ORDER BY created_at DESC, id", status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inquiries: %w", err)
	}
	inquiries, err := pgx.CollectRows(rows, scanInquiry)
	if err != nil {
		return nil, fmt.Errorf("failed to scan inquiries: %w", err)
	}
	return inquiries, nil
}

// Resolve marks an OPEN inquiry RESOLVED with the given note.
func (p *PgStore) Resolve(ctx context.Context, id uuid.UUID, note string) (*Inquiry, error) {
	rows, err := p.db.Query(ctx,
		`UPDATE inquiries
		 SET status = $3, resolution_note = $2, resolved_at = now()
		 WHERE id = $1 AND status = $4
		 RETURNING `+inquiryColumns,
		id, note, StatusResolved, StatusOpen)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve inquiry: %w", err)
	}
	inquiry, err := pgx.CollectOneRow(rows, scanInquiry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing row from one that is already resolved.
			if _, findErr := p.FindByID(ctx, id); findErr != nil {
				return nil, findErr
			}
			return nil, ierrors.ErrAlreadyResolved
		}
		return nil, fmt.Errorf("failed to resolve inquiry: %w", err)
	}
	return &inquiry, nil
}

func scanInquiry(row pgx.CollectableRow) (Inquiry, error) {
	var i Inquiry
	err := row.Scan(&i.ID, &i.Type, &i.Name, &i.Email, &i.Phone, &i.EventDate, &i.Message, &i.Details,
		&i.Status, &i.ResolutionNote, &i.ResolvedAt, &i.CreatedAt)
	return i, err
}
