package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
	"shipping-service/internal/ports/shipmenttx"
)

// OrderRepo represents the order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

const orderColumns = `
    id, order_number, status, priority, customer_id, courier_id,
    pickup_address_id, delivery_address_id, package_id,
    requested_pickup_date, actual_pickup_date, estimated_delivery_date, actual_delivery_date,
    estimated_price, final_price, created_at, updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.Status, &o.Priority, &o.CustomerID, &o.CourierID,
		&o.PickupAddressID, &o.DeliveryAddressID, &o.PackageID,
		&o.RequestedPickupDate, &o.ActualPickupDate, &o.EstimatedDeliveryDate, &o.ActualDeliveryDate,
		&o.EstimatedPrice, &o.FinalPrice, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func insertOrder(ctx context.Context, q querier, o *domain.Order) error {
	err := q.QueryRow(ctx, `
        INSERT INTO orders (
            order_number, status, priority, customer_id, courier_id,
            pickup_address_id, delivery_address_id, package_id,
            requested_pickup_date, estimated_delivery_date, estimated_price
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at
    `, o.OrderNumber, o.Status, o.Priority, o.CustomerID, o.CourierID,
		o.PickupAddressID, o.DeliveryAddressID, o.PackageID,
		o.RequestedPickupDate, o.EstimatedDeliveryDate, o.EstimatedPrice).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		// unique package_id (1:1 package-to-order) or a missing referenced row
		if IsDuplicate(err) || IsForeignKey(err) {
			return apperr.ErrConflict
		}
		if IsCheckViolation(err) {
			return apperr.ErrInvalid
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Get - returns an order by its ID, or nil when absent.
func (r *OrderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT`+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

// GetByNumber - returns an order by its human-readable number, or nil.
func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT`+orderColumns+` FROM orders WHERE order_number = $1`, number))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by number %q: %w", number, err)
	}
	return o, nil
}

// ListByCustomer returns a customer's orders, newest first.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string, limit, offset *int) ([]domain.Order, error) {
	q := `SELECT` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`
	args := []any{customerID}
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// WithTx opens a transaction and executes fn within it.
func (r *OrderRepo) WithTx(ctx context.Context, fn func(tx shipmenttx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo represents the shipment transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// InsertAddress - inserts an address within the transaction.
func (r *TxRepo) InsertAddress(ctx context.Context, a *domain.Address) error {
	return insertAddress(ctx, r.tx, a)
}

// InsertPackage - inserts a package within the transaction.
func (r *TxRepo) InsertPackage(ctx context.Context, p *domain.Package) error {
	return insertPackage(ctx, r.tx, p)
}

// InsertOrder - inserts an order within the transaction.
func (r *TxRepo) InsertOrder(ctx context.Context, o *domain.Order) error {
	return insertOrder(ctx, r.tx, o)
}

// GetOrderForUpdate - locks and returns an order row, or nil when absent.
func (r *TxRepo) GetOrderForUpdate(ctx context.Context, orderID string) (*domain.Order, error) {
	o, err := scanOrder(r.tx.QueryRow(ctx,
		`SELECT`+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order for update %s: %w", orderID, err)
	}
	return o, nil
}

// UpdateOrderStatus - moves an order to the given status.
func (r *TxRepo) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, orderID, status)
	if err != nil {
		return fmt.Errorf("update order status %s: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// InsertTrackingEvent - appends a tracking event within the transaction.
func (r *TxRepo) InsertTrackingEvent(ctx context.Context, e *domain.TrackingEvent) error {
	return insertTrackingEvent(ctx, r.tx, e)
}
