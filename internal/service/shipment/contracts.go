package shipment

import (
	"context"

	"shipping-service/internal/domain"
	"shipping-service/internal/ports/shipmenttx"
)

type addressRepository interface {
	Create(ctx context.Context, a *domain.Address) (string, error)
	Get(ctx context.Context, id string) (*domain.Address, error)
}

type packageRepository interface {
	Create(ctx context.Context, p *domain.Package) (string, error)
	Get(ctx context.Context, id string) (*domain.Package, error)
}

type orderRepository interface {
	shipmenttx.Runner
	Get(ctx context.Context, id string) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset *int) ([]domain.Order, error)
}
