package courierevents

import (
	"time"
)

// Event is a single courier status update published to Kafka.
type Event struct {
	OrderID   string    `json:"order_id"`
	CourierID string    `json:"courier_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
