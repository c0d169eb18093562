package shipmenttx

import (
	"context"

	"shipping-service/internal/domain"
)

// Repository is the set of writes available inside one shipment transaction.
type Repository interface {
	InsertAddress(ctx context.Context, a *domain.Address) error
	InsertPackage(ctx context.Context, p *domain.Package) error
	InsertOrder(ctx context.Context, o *domain.Order) error
	GetOrderForUpdate(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	InsertTrackingEvent(ctx context.Context, e *domain.TrackingEvent) error
}

// Runner is a transaction runner.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
