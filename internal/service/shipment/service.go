package shipment

import (
	"context"
	"time"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
	"shipping-service/internal/logx"
	"shipping-service/internal/ports/shipmenttx"
)

// Service coordinates address, package and order writes. Order creation is
// transactional: either the order row and its initial tracking event both
// land, or neither does.
type Service struct {
	addresses        addressRepository
	packages         packageRepository
	orders           orderRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures a shipment Service.
func NewService(a addressRepository, p packageRepository, o orderRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		addresses:        a,
		packages:         p,
		orders:           o,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// CreateAddress persists a new address and returns its generated ID.
func (s *Service) CreateAddress(ctx context.Context, a *domain.Address) (string, error) {
	if a == nil {
		return "", apperr.ErrInvalid
	}
	if a.Country == "" {
		a.Country = domain.DefaultCountry
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.addresses.Create(ctx, a)
}

// GetAddress retrieves an address by its ID.
func (s *Service) GetAddress(ctx context.Context, id string) (*domain.Address, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	a, err := s.addresses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.ErrNotFound
	}
	return a, nil
}

// CreatePackage persists a new package and returns its generated ID.
func (s *Service) CreatePackage(ctx context.Context, p *domain.Package) (string, error) {
	if p == nil {
		return "", apperr.ErrInvalid
	}
	if !p.Type.Valid() || p.WeightKg <= 0 || p.DeclaredValue < 0 {
		return "", apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.packages.Create(ctx, p)
}

// GetPackage retrieves a package by its ID.
func (s *Service) GetPackage(ctx context.Context, id string) (*domain.Package, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.packages.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

func validateNewOrder(in *domain.NewOrder) error {
	if in == nil {
		return apperr.ErrInvalid
	}
	if in.CustomerID == "" || in.PickupAddressID == "" || in.DeliveryAddressID == "" || in.PackageID == "" {
		return apperr.ErrInvalid
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityStandard
	}
	if !in.Priority.Valid() {
		return apperr.ErrInvalid
	}
	if in.EstimatedPrice < 0 {
		return apperr.ErrInvalid
	}
	return nil
}

// CreateOrder persists a new order in PENDING status together with its
// initial tracking event, in one transaction. Returns the stored order.
func (s *Service) CreateOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	if err := validateNewOrder(&in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	order := &domain.Order{
		OrderNumber:           newOrderNumber(now),
		Status:                domain.StatusPending,
		Priority:              in.Priority,
		CustomerID:            in.CustomerID,
		CourierID:             in.CourierID,
		PickupAddressID:       in.PickupAddressID,
		DeliveryAddressID:     in.DeliveryAddressID,
		PackageID:             in.PackageID,
		RequestedPickupDate:   in.RequestedPickupDate,
		EstimatedDeliveryDate: in.EstimatedDeliveryDate,
		EstimatedPrice:        in.EstimatedPrice,
	}

	err := s.orders.WithTx(ctx, func(tx shipmenttx.Repository) error {
		if err := tx.InsertOrder(ctx, order); err != nil {
			return err
		}

		msg := "Order created"
		return tx.InsertTrackingEvent(ctx, &domain.TrackingEvent{
			OrderID:   order.ID,
			Status:    domain.StatusPending,
			Message:   &msg,
			UpdatedBy: order.CustomerID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		logx.String("event", "order_created"),
		logx.String("order_id", order.ID),
		logx.String("order_number", order.OrderNumber),
		logx.String("customer_id", order.CustomerID),
		logx.String("priority", string(order.Priority)),
	)

	return order, nil
}

// ShipmentInput carries everything needed to create a full shipment: both
// addresses, the package and the order attributes.
type ShipmentInput struct {
	Pickup                domain.Address
	Delivery              domain.Address
	Package               domain.Package
	CustomerID            string
	Priority              domain.PriorityLevel
	RequestedPickupDate   *time.Time
	EstimatedDeliveryDate *time.Time
	EstimatedPrice        float64
}

// CreateShipment persists both addresses, the package, the order and the
// initial tracking event in a single transaction.
func (s *Service) CreateShipment(ctx context.Context, in ShipmentInput) (*domain.Order, error) {
	if in.CustomerID == "" {
		return nil, apperr.ErrInvalid
	}
	if !in.Package.Type.Valid() || in.Package.WeightKg <= 0 || in.Package.DeclaredValue < 0 {
		return nil, apperr.ErrInvalid
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityStandard
	}
	if !in.Priority.Valid() || in.EstimatedPrice < 0 {
		return nil, apperr.ErrInvalid
	}
	if in.Pickup.Country == "" {
		in.Pickup.Country = domain.DefaultCountry
	}
	if in.Delivery.Country == "" {
		in.Delivery.Country = domain.DefaultCountry
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	order := &domain.Order{
		OrderNumber:           newOrderNumber(now),
		Status:                domain.StatusPending,
		Priority:              in.Priority,
		CustomerID:            in.CustomerID,
		RequestedPickupDate:   in.RequestedPickupDate,
		EstimatedDeliveryDate: in.EstimatedDeliveryDate,
		EstimatedPrice:        in.EstimatedPrice,
	}

	err := s.orders.WithTx(ctx, func(tx shipmenttx.Repository) error {
		if err := tx.InsertAddress(ctx, &in.Pickup); err != nil {
			return err
		}
		if err := tx.InsertAddress(ctx, &in.Delivery); err != nil {
			return err
		}
		if err := tx.InsertPackage(ctx, &in.Package); err != nil {
			return err
		}

		order.PickupAddressID = in.Pickup.ID
		order.DeliveryAddressID = in.Delivery.ID
		order.PackageID = in.Package.ID

		if err := tx.InsertOrder(ctx, order); err != nil {
			return err
		}

		msg := "Order created"
		return tx.InsertTrackingEvent(ctx, &domain.TrackingEvent{
			OrderID:   order.ID,
			Status:    domain.StatusPending,
			Message:   &msg,
			UpdatedBy: order.CustomerID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("shipment created",
		logx.String("event", "shipment_created"),
		logx.String("order_id", order.ID),
		logx.String("order_number", order.OrderNumber),
		logx.String("customer_id", order.CustomerID),
	)

	return order, nil
}

// GetOrder retrieves an order by its ID.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

// GetOrderByNumber retrieves an order by its order number.
func (s *Service) GetOrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	o, err := s.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

// ListOrders returns a customer's orders with optional pagination.
func (s *Service) ListOrders(ctx context.Context, customerID string, limit, offset *int) ([]domain.Order, error) {
	if customerID == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.orders.ListByCustomer(ctx, customerID, limit, offset)
}
