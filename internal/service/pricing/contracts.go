package pricing

import (
	"context"

	"shipping-service/internal/domain"
	"shipping-service/internal/gateway/routing"
)

type addressRepository interface {
	Get(ctx context.Context, id string) (*domain.Address, error)
}

type pricingRepository interface {
	ActiveByPackageType(ctx context.Context, t domain.PackageType) (*domain.PricingRule, error)
}

type routingGateway interface {
	Distance(ctx context.Context, fromLat, fromLong, toLat, toLong float64) (*routing.Route, error)
}
