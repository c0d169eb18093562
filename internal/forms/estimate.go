package forms

import "shipping-service/internal/apperr"

// EstimateForm is a normalized price estimate request.
type EstimateForm struct {
	PackageType       string   `form:"packageType" validate:"required,oneof=ENVELOPE SMALL_PACKAGE MEDIUM_PACKAGE LARGE_PACKAGE FRAGILE FOOD_DELIVERY DOCUMENTS"`
	WeightKg          *float64 `form:"weightKg" validate:"required,gt=0"`
	Priority          string   `form:"priority" validate:"required,oneof=STANDARD EXPRESS URGENT SAME_DAY"`
	PickupAddressID   string   `form:"pickupAddressId" validate:"required,uuid4"`
	DeliveryAddressID string   `form:"deliveryAddressId" validate:"required,uuid4"`
}

// DecodeEstimate coerces and validates raw estimate input.
func DecodeEstimate(v Values) (*EstimateForm, error) {
	verr := apperr.NewValidationError()

	f := &EstimateForm{
		WeightKg: coerceFloat(v, "weightKg", verr),
	}
	f.PackageType, _ = v.get("packageType")
	f.Priority, _ = v.get("priority")
	f.PickupAddressID, _ = v.get("pickupAddressId")
	f.DeliveryAddressID, _ = v.get("deliveryAddressId")

	if err := check(f, verr); err != nil {
		return nil, err
	}
	return f, nil
}
