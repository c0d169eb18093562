package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"shipping-service/internal/http/handlers"
	"shipping-service/internal/service/shipment"
	"shipping-service/internal/service/tracking"
)

func newAddressHandler(svc *shipment.Service) *handlers.AddressHandler {
	return handlers.NewAddressHandler(handlers.NewShipmentUsecase(svc))
}

func newPackageHandler(svc *shipment.Service) *handlers.PackageHandler {
	return handlers.NewPackageHandler(handlers.NewShipmentUsecase(svc))
}

type orderHandlerIn struct {
	dig.In

	Svc     *shipment.Service
	Created prometheus.Counter `name:"orders_created_total"`
}

func newOrderHandler(in orderHandlerIn) *handlers.OrderHandler {
	return handlers.NewOrderHandler(handlers.NewShipmentUsecase(in.Svc), in.Created)
}

func newShipmentHandler(in orderHandlerIn) *handlers.ShipmentHandler {
	return handlers.NewShipmentHandler(handlers.NewShipmentUsecase(in.Svc), in.Created)
}

type trackingHandlerIn struct {
	dig.In

	Svc      *tracking.Service
	Recorded prometheus.Counter `name:"tracking_events_total"`
}

func newTrackingHandler(in trackingHandlerIn) *handlers.TrackingHandler {
	return handlers.NewTrackingHandler(handlers.NewTrackingUsecase(in.Svc), in.Recorded)
}
