package handlers

import (
	"shipping-service/internal/domain"
	"shipping-service/internal/forms"
)

func addressFromForm(f *forms.AddressForm) *domain.Address {
	return &domain.Address{
		Street:    f.Street,
		City:      f.City,
		State:     f.State,
		ZipCode:   f.ZipCode,
		Country:   f.Country,
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
	}
}

func packageFromForm(f *forms.PackageForm) *domain.Package {
	return &domain.Package{
		Type:                domain.PackageType(f.Type),
		WeightKg:            *f.WeightKg,
		Dimensions:          f.Dimensions,
		IsFragile:           f.IsFragile,
		SpecialInstructions: f.SpecialInstructions,
		DeclaredValue:       f.DeclaredValue,
	}
}

func newOrderFromForm(f *forms.OrderForm) domain.NewOrder {
	return domain.NewOrder{
		CustomerID:            f.CustomerID,
		CourierID:             f.CourierID,
		PickupAddressID:       f.PickupAddressID,
		DeliveryAddressID:     f.DeliveryAddressID,
		PackageID:             f.PackageID,
		Priority:              domain.PriorityLevel(f.Priority),
		RequestedPickupDate:   f.RequestedPickupDate,
		EstimatedDeliveryDate: f.EstimatedDeliveryDate,
		EstimatedPrice:        *f.EstimatedPrice,
	}
}

func priorityFromForm(s string) domain.PriorityLevel {
	return domain.PriorityLevel(s)
}

func trackingFromForm(f *forms.TrackingForm) *domain.TrackingEvent {
	return &domain.TrackingEvent{
		OrderID:   f.OrderID,
		Status:    domain.OrderStatus(f.Status),
		Message:   f.Message,
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
		UpdatedBy: f.UpdatedBy,
	}
}
