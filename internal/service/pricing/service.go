package pricing

import (
	"context"
	"math"
	"time"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
	"shipping-service/internal/logx"
)

// Service computes price estimates from the active rate table and the
// distance between two stored addresses.
type Service struct {
	addresses        addressRepository
	rules            pricingRepository
	router           routingGateway
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a pricing Service.
func NewService(a addressRepository, r pricingRepository, router routingGateway, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		addresses:        a,
		rules:            r,
		router:           router,
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// EstimateInput carries the attributes a price estimate depends on.
type EstimateInput struct {
	PackageType       domain.PackageType
	WeightKg          float64
	Priority          domain.PriorityLevel
	PickupAddressID   string
	DeliveryAddressID string
}

// Estimate is a computed price quote.
type Estimate struct {
	Price       float64
	DistanceKm  float64
	PackageType domain.PackageType
	Priority    domain.PriorityLevel
}

// EstimatePrice quotes a shipment between two stored addresses. Both
// addresses must carry coordinates. The external router is preferred;
// when it is unavailable the straight-line distance is used instead.
func (s *Service) EstimatePrice(ctx context.Context, in EstimateInput) (*Estimate, error) {
	if !in.PackageType.Valid() || !in.Priority.Valid() || in.WeightKg <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pickup, err := s.addresses.Get(ctx, in.PickupAddressID)
	if err != nil {
		return nil, err
	}
	delivery, err := s.addresses.Get(ctx, in.DeliveryAddressID)
	if err != nil {
		return nil, err
	}
	if pickup == nil || delivery == nil {
		return nil, apperr.ErrNotFound
	}
	if !pickup.HasCoordinates() || !delivery.HasCoordinates() {
		return nil, apperr.ErrInvalid
	}

	rule, err := s.rules.ActiveByPackageType(ctx, in.PackageType)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, apperr.ErrNotFound
	}

	distanceKm, err := s.distance(ctx, pickup, delivery)
	if err != nil {
		return nil, err
	}

	price := rule.Estimate(in.WeightKg, distanceKm, in.Priority)
	price = math.Round(price*100) / 100

	s.logger.Info("price estimated",
		logx.String("event", "price_estimated"),
		logx.String("package_type", string(in.PackageType)),
		logx.String("priority", string(in.Priority)),
		logx.Float64("distance_km", distanceKm),
		logx.Float64("price", price),
	)

	return &Estimate{
		Price:       price,
		DistanceKm:  distanceKm,
		PackageType: in.PackageType,
		Priority:    in.Priority,
	}, nil
}

func (s *Service) distance(ctx context.Context, from, to *domain.Address) (float64, error) {
	if s.router != nil {
		route, err := s.router.Distance(ctx, *from.Latitude, *from.Longitude, *to.Latitude, *to.Longitude)
		if err == nil {
			return route.DistanceKm, nil
		}
		if ctx.Err() != nil {
			return 0, err
		}
		s.logger.Warn("routing gateway unavailable, falling back to haversine",
			logx.Any("err", err),
		)
	}
	return haversineKm(*from.Latitude, *from.Longitude, *to.Latitude, *to.Longitude), nil
}

const earthRadiusKm = 6371.0

// haversineKm is the great-circle distance between two coordinate pairs.
func haversineKm(lat1, long1, lat2, long2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLong := rad(long2 - long1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLong/2)*math.Sin(dLong/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
