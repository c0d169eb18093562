package kafka

import (
	"strings"
	"time"

	"shipping-service/internal/service/courierevents"
)

// EventDTO is the wire shape of a courier event.
type EventDTO struct {
	OrderID   string    `json:"order_id"`
	CourierID string    `json:"courier_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ToDomain converts EventDTO to courierevents.Event.
func ToDomain(dto EventDTO) courierevents.Event {
	return courierevents.Event{
		OrderID:   strings.TrimSpace(dto.OrderID),
		CourierID: strings.TrimSpace(dto.CourierID),
		Status:    strings.TrimSpace(dto.Status),
		Message:   dto.Message,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		Timestamp: dto.Timestamp,
	}
}
