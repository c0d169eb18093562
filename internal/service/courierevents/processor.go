package courierevents

import (
	"context"
	"errors"
	"strings"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
	"shipping-service/internal/logx"
)

// Processor turns courier status updates from the event feed into tracking
// records. Updates that cannot ever succeed (unknown order, illegal
// transition) are dropped rather than retried.
type Processor struct {
	tracking TrackingPort
	logger   logx.Logger
}

// NewProcessor creates a new courier event Processor.
func NewProcessor(tracking TrackingPort, logger logx.Logger) *Processor {
	return &Processor{tracking: tracking, logger: logger}
}

// Handle processes a single courier event.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	status := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(e.Status)))
	if !status.Valid() {
		p.logger.Warn("courier event with unknown status dropped",
			logx.String("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
		return nil
	}

	ev := &domain.TrackingEvent{
		OrderID:   strings.TrimSpace(e.OrderID),
		Status:    status,
		Latitude:  e.Latitude,
		Longitude: e.Longitude,
		UpdatedBy: strings.TrimSpace(e.CourierID),
		Timestamp: e.Timestamp,
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		ev.Message = &msg
	}

	err := p.tracking.Record(ctx, ev)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrNotFound):
		p.logger.Warn("courier event for unknown order dropped",
			logx.String("order_id", ev.OrderID),
			logx.String("status", string(status)),
		)
		return nil
	case errors.Is(err, apperr.ErrConflict):
		p.logger.Warn("courier event with illegal transition dropped",
			logx.String("order_id", ev.OrderID),
			logx.String("status", string(status)),
		)
		return nil
	case errors.Is(err, apperr.ErrInvalid):
		p.logger.Warn("malformed courier event dropped",
			logx.String("order_id", ev.OrderID),
		)
		return nil
	default:
		return err
	}
}
