package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	oerrors "github.com/mayasbakes/bakehouse/internal/order/errors"
)

const orderColumns = "id, customer_name, customer_email, customer_phone, pickup_date, note, status, payment_status, total_cents, created_at, updated_at"

// PgStore implements OrderStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of OrderStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// withTransaction runs fn inside a transaction, rolling back on error.
func (p *PgStore) withTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Create persists an order and its items in one transaction.
func (p *PgStore) Create(ctx context.Context, params CreateParams) (*Order, error) {
	var total int64
	for _, item := range params.Items {
		total += item.UnitPriceCents * int64(item.Quantity)
	}

	var order Order
	err := p.withTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`INSERT INTO orders (customer_name, customer_email, customer_phone, pickup_date, note, total_cents)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING `+orderColumns,
			params.CustomerName, params.CustomerEmail, params.CustomerPhone, params.PickupDate, params.Note, total)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		order, err = pgx.CollectOneRow(rows, scanOrder)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range params.Items {
			itemRows, err := tx.Query(ctx,
				`INSERT INTO order_items (order_id, product_id, name, unit_price_cents, quantity)
				 VALUES ($1, $2, $3, $4, $5)
				 RETURNING id, order_id, product_id, name, unit_price_cents, quantity`,
				order.ID, item.ProductID, item.Name, item.UnitPriceCents, item.Quantity)
			if err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
			created, err := pgx.CollectOneRow(itemRows, scanOrderItem)
			if err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
			order.Items = append(order.Items, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByID retrieves an order with its items.
// Returns ErrOrderNotFound if no order exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	rows, err := p.db.Query(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}
	order, err := pgx.CollectOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, oerrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	itemRows, err := p.db.Query(ctx,
		"SELECT id, order_id, product_id, name, unit_price_cents, quantity FROM order_items WHERE order_id = $1 ORDER BY id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to find order items: %w", err)
	}
	order.Items, err = pgx.CollectRows(itemRows, scanOrderItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan order items: %w", err)
	}
	return &order, nil
}

// FindAll returns orders newest first, optionally filtered by status.
func (p *PgStore) FindAll(ctx context.Context, status string) ([]Order, error) {
	var rows pgx.Rows
	var err error
	if status == "" {
		rows, err = p.db.Query(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY created_at DESC, id")
	} else {
		rows, err = p.db.Query(ctx, "SELECT "+orderColumns+" FROM orders WHERE status = $1 ORDER BY created_at DESC, id", status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves the order status, guarded against concurrent moves.
func (p *PgStore) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (*Order, error) {
	return p.updateColumn(ctx, id, "status", from, to)
}

// UpdatePaymentStatus moves the payment status, guarded against concurrent moves.
func (p *PgStore) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, from, to string) (*Order, error) {
	return p.updateColumn(ctx, id, "payment_status", from, to)
}

// updateColumn applies the change only while the column still holds the
// expected value. Zero rows means the order is gone or another writer
// moved it first; a follow-up read tells the two apart.
func (p *PgStore) updateColumn(ctx context.Context, id uuid.UUID, column, from, to string) (*Order, error) {
	rows, err := p.db.Query(ctx,
		"UPDATE orders SET "+column+" = $2, updated_at = now() WHERE id = $1 AND "+column+" = $3 RETURNING "+orderColumns,
		id, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", column, err)
	}
	order, err := pgx.CollectOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, findErr := p.FindByID(ctx, id); findErr != nil {
				return nil, findErr
			}
			return nil, oerrors.ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to update order %s: %w", column, err)
	}
	return &order, nil
}

func scanOrder(row pgx.CollectableRow) (Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.PickupDate, &o.Note,
		&o.Status, &o.PaymentStatus, &o.TotalCents, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func scanOrderItem(row pgx.CollectableRow) (OrderItem, error) {
	var i OrderItem
	err := row.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Name, &i.UnitPriceCents, &i.Quantity)
	return i, err
}
