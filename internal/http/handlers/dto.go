package handlers

import (
	"time"

	"shipping-service/internal/domain"
)

type addressResponse struct {
	ID        string    `json:"id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zipCode"`
	Country   string    `json:"country"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAddressResponse(a *domain.Address) addressResponse {
	return addressResponse{
		ID:        a.ID,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		CreatedAt: a.CreatedAt,
	}
}

type packageResponse struct {
	ID                  string    `json:"id"`
	Type                string    `json:"type"`
	WeightKg            float64   `json:"weightKg"`
	Dimensions          *string   `json:"dimensions,omitempty"`
	IsFragile           bool      `json:"isFragile"`
	SpecialInstructions *string   `json:"specialInstructions,omitempty"`
	DeclaredValue       float64   `json:"declaredValue"`
	CreatedAt           time.Time `json:"createdAt"`
}

func toPackageResponse(p *domain.Package) packageResponse {
	return packageResponse{
		ID:                  p.ID,
		Type:                string(p.Type),
		WeightKg:            p.WeightKg,
		Dimensions:          p.Dimensions,
		IsFragile:           p.IsFragile,
		SpecialInstructions: p.SpecialInstructions,
		DeclaredValue:       p.DeclaredValue,
		CreatedAt:           p.CreatedAt,
	}
}

type orderResponse struct {
	ID                    string     `json:"id"`
	OrderNumber           string     `json:"orderNumber"`
	Status                string     `json:"status"`
	Priority              string     `json:"priority"`
	CustomerID            string     `json:"customerId"`
	CourierID             *string    `json:"courierId,omitempty"`
	PickupAddressID       string     `json:"pickupAddressId"`
	DeliveryAddressID     string     `json:"deliveryAddressId"`
	PackageID             string     `json:"packageId"`
	RequestedPickupDate   *time.Time `json:"requestedPickupDate,omitempty"`
	ActualPickupDate      *time.Time `json:"actualPickupDate,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate,omitempty"`
	ActualDeliveryDate    *time.Time `json:"actualDeliveryDate,omitempty"`
	EstimatedPrice        float64    `json:"estimatedPrice"`
	FinalPrice            *float64   `json:"finalPrice,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:                    o.ID,
		OrderNumber:           o.OrderNumber,
		Status:                string(o.Status),
		Priority:              string(o.Priority),
		CustomerID:            o.CustomerID,
		CourierID:             o.CourierID,
		PickupAddressID:       o.PickupAddressID,
		DeliveryAddressID:     o.DeliveryAddressID,
		PackageID:             o.PackageID,
		RequestedPickupDate:   o.RequestedPickupDate,
		ActualPickupDate:      o.ActualPickupDate,
		EstimatedDeliveryDate: o.EstimatedDeliveryDate,
		ActualDeliveryDate:    o.ActualDeliveryDate,
		EstimatedPrice:        o.EstimatedPrice,
		FinalPrice:            o.FinalPrice,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

type trackingResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Message   *string   `json:"message,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	UpdatedBy string    `json:"updatedBy"`
	Timestamp time.Time `json:"timestamp"`
}

func toTrackingResponse(e *domain.TrackingEvent) trackingResponse {
	return trackingResponse{
		ID:        e.ID,
		OrderID:   e.OrderID,
		Status:    string(e.Status),
		Message:   e.Message,
		Latitude:  e.Latitude,
		Longitude: e.Longitude,
		UpdatedBy: e.UpdatedBy,
		Timestamp: e.Timestamp,
	}
}

type estimateResponse struct {
	Price       float64 `json:"price"`
	DistanceKm  float64 `json:"distanceKm"`
	PackageType string  `json:"packageType"`
	Priority    string  `json:"priority"`
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Email:    u.Email,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}
