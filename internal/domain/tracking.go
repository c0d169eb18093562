package domain

import "time"

// TrackingEvent is an immutable, timestamped record of an order's status and
// location at a point in time. Events are append-only: once written they are
// never mutated or deleted, forming the audit trail for the order.
type TrackingEvent struct {
	ID        string
	OrderID   string
	Status    OrderStatus
	Message   *string
	Latitude  *float64
	Longitude *float64
	UpdatedBy string
	Timestamp time.Time
}
