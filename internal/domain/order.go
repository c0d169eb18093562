package domain

import "time"

// Order is a shipment request linking one package, pickup and delivery
// addresses, a customer and optionally a courier. A package belongs to at
// most one order (unique constraint on package_id).
type Order struct {
	ID                    string
	OrderNumber           string
	Status                OrderStatus
	Priority              PriorityLevel
	CustomerID            string
	CourierID             *string
	PickupAddressID       string
	DeliveryAddressID     string
	PackageID             string
	RequestedPickupDate   *time.Time
	ActualPickupDate      *time.Time
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	EstimatedPrice        float64
	FinalPrice            *float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewOrder carries the fields required to create an order. Status, final
// price and actual dates are assigned by the write path, not the caller.
type NewOrder struct {
	CustomerID            string
	CourierID             *string
	PickupAddressID       string
	DeliveryAddressID     string
	PackageID             string
	Priority              PriorityLevel
	RequestedPickupDate   *time.Time
	EstimatedDeliveryDate *time.Time
	EstimatedPrice        float64
}
