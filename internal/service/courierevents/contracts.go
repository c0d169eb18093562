package courierevents

import (
	"context"

	"shipping-service/internal/domain"
)

// TrackingPort abstracts the subset of tracking service operations
// needed by the Processor when handling courier events.
type TrackingPort interface {
	Record(ctx context.Context, e *domain.TrackingEvent) error
}
