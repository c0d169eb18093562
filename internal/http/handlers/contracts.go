package handlers

import (
	"context"

	"shipping-service/internal/domain"
	"shipping-service/internal/service/maintenance"
	"shipping-service/internal/service/pricing"
	"shipping-service/internal/service/shipment"
	"shipping-service/internal/service/tracking"
	"shipping-service/internal/service/user"
)

type shipmentUsecase interface {
	CreateAddress(ctx context.Context, a *domain.Address) (string, error)
	GetAddress(ctx context.Context, id string) (*domain.Address, error)
	CreatePackage(ctx context.Context, p *domain.Package) (string, error)
	GetPackage(ctx context.Context, id string) (*domain.Package, error)
	CreateOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
	CreateShipment(ctx context.Context, in shipment.ShipmentInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (*domain.Order, error)
	ListOrders(ctx context.Context, customerID string, limit, offset *int) ([]domain.Order, error)
}

// NewShipmentUsecase wires a shipment Service into a shipmentUsecase.
func NewShipmentUsecase(svc *shipment.Service) shipmentUsecase {
	return svc
}

type trackingUsecase interface {
	Record(ctx context.Context, e *domain.TrackingEvent) error
	History(ctx context.Context, orderID string) ([]domain.TrackingEvent, error)
}

// NewTrackingUsecase wires a tracking Service into a trackingUsecase.
func NewTrackingUsecase(svc *tracking.Service) trackingUsecase {
	return svc
}

type pricingUsecase interface {
	EstimatePrice(ctx context.Context, in pricing.EstimateInput) (*pricing.Estimate, error)
}

// NewPricingUsecase wires a pricing Service into a pricingUsecase.
func NewPricingUsecase(svc *pricing.Service) pricingUsecase {
	return svc
}

type userUsecase interface {
	Register(ctx context.Context, email, password string, role domain.UserRole) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	VerifyToken(token string) (*user.Claims, error)
}

// NewUserUsecase wires a user Service into a userUsecase.
func NewUserUsecase(svc *user.Service) userUsecase {
	return svc
}

type maintenanceUsecase interface {
	Bootstrap(ctx context.Context) error
	Seed(ctx context.Context) error
	Reset(ctx context.Context) error
}

// NewMaintenanceUsecase wires a maintenance Service into a maintenanceUsecase.
func NewMaintenanceUsecase(svc *maintenance.Service) maintenanceUsecase {
	return svc
}

type counter interface {
	Inc()
}
