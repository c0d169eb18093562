package tracking

import (
	"context"

	"shipping-service/internal/domain"
)

type trackingRepository interface {
	ListByOrder(ctx context.Context, orderID string) ([]domain.TrackingEvent, error)
}
