package tracking

import (
	"context"
	"time"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
	"shipping-service/internal/logx"
	"shipping-service/internal/ports/shipmenttx"
)

// Service records tracking events and keeps the order status in step with
// its tracking history. The order row is locked while the event is written,
// so two concurrent recorders cannot both advance the same order.
type Service struct {
	runner           shipmenttx.Runner
	events           trackingRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures a tracking Service.
func NewService(runner shipmenttx.Runner, events trackingRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		runner:           runner,
		events:           events,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateEvent(e *domain.TrackingEvent) error {
	if e == nil {
		return apperr.ErrInvalid
	}
	if e.OrderID == "" || e.UpdatedBy == "" {
		return apperr.ErrInvalid
	}
	if !e.Status.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

// Record appends a tracking event and advances the order status in one
// transaction. An event repeating the order's current status is recorded as
// a plain progress update; any other status must be a legal transition or
// the whole write is rejected with a conflict.
func (s *Service) Record(ctx context.Context, e *domain.TrackingEvent) error {
	if err := validateEvent(e); err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.runner.WithTx(ctx, func(tx shipmenttx.Repository) error {
		order, err := tx.GetOrderForUpdate(ctx, e.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.ErrNotFound
		}

		if e.Status != order.Status {
			if !order.Status.CanTransition(e.Status) {
				return apperr.ErrConflict
			}
			if err := tx.UpdateOrderStatus(ctx, order.ID, e.Status); err != nil {
				return err
			}
		}

		return tx.InsertTrackingEvent(ctx, e)
	})
	if err != nil {
		return err
	}

	s.logger.Info("tracking event recorded",
		logx.String("event", "tracking_recorded"),
		logx.String("order_id", e.OrderID),
		logx.String("status", string(e.Status)),
		logx.String("updated_by", e.UpdatedBy),
	)

	return nil
}

// History returns an order's tracking events in recording order.
func (s *Service) History(ctx context.Context, orderID string) ([]domain.TrackingEvent, error) {
	if orderID == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.events.ListByOrder(ctx, orderID)
}
