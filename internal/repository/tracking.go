package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
)

// TrackingRepo represents the order tracking repository. Rows are
// append-only: no update or delete statement exists in this package.
type TrackingRepo struct{ db *pgxpool.Pool }

// NewTrackingRepo creates a new TrackingRepo.
func NewTrackingRepo(db *pgxpool.Pool) *TrackingRepo { return &TrackingRepo{db: db} }

func insertTrackingEvent(ctx context.Context, q querier, e *domain.TrackingEvent) error {
	var ts any
	if !e.Timestamp.IsZero() {
		ts = e.Timestamp
	}
	err := q.QueryRow(ctx, `
        INSERT INTO order_tracking (order_id, status, message, latitude, longitude, updated_by, timestamp)
        VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, CURRENT_TIMESTAMP))
        RETURNING id, timestamp
    `, e.OrderID, e.Status, e.Message, e.Latitude, e.Longitude, e.UpdatedBy, ts).
		Scan(&e.ID, &e.Timestamp)
	if err != nil {
		if IsForeignKey(err) {
			return apperr.ErrNotFound
		}
		return fmt.Errorf("insert tracking event: %w", err)
	}
	return nil
}

// ListByOrder returns an order's tracking history in insertion order.
// The seq column orders events, not the timestamp: producers may supply
// timestamps, and equal or out-of-order values must not reshuffle history.
func (r *TrackingRepo) ListByOrder(ctx context.Context, orderID string) ([]domain.TrackingEvent, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, order_id, status, message, latitude, longitude, updated_by, timestamp
        FROM order_tracking
        WHERE order_id = $1
        ORDER BY seq ASC
    `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TrackingEvent
	for rows.Next() {
		var e domain.TrackingEvent
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Status, &e.Message,
			&e.Latitude, &e.Longitude, &e.UpdatedBy, &e.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
