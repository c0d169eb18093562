package forms

import (
	"time"

	"shipping-service/internal/apperr"
)

// OrderForm is a normalized order creation record. Address and package IDs
// must reference already-persisted rows; referential integrity is enforced
// by the store, not re-validated here.
type OrderForm struct {
	PickupAddressID       string     `form:"pickupAddressId" validate:"required,uuid4"`
	DeliveryAddressID     string     `form:"deliveryAddressId" validate:"required,uuid4"`
	PackageID             string     `form:"packageId" validate:"required,uuid4"`
	CustomerID            string     `form:"customerId" validate:"required,uuid4"`
	CourierID             *string    `form:"courierId" validate:"omitempty,uuid4"`
	Priority              string     `form:"priority" validate:"required,oneof=STANDARD EXPRESS URGENT SAME_DAY"`
	RequestedPickupDate   *time.Time `form:"requestedPickupDate"`
	EstimatedDeliveryDate *time.Time `form:"estimatedDeliveryDate"`
	EstimatedPrice        *float64   `form:"estimatedPrice" validate:"required,gte=0"`
}

// DecodeOrder coerces and validates raw order input.
func DecodeOrder(v Values) (*OrderForm, error) {
	verr := apperr.NewValidationError()

	f := &OrderForm{
		CourierID:             optString(v, "courierId"),
		RequestedPickupDate:   coerceTime(v, "requestedPickupDate", verr),
		EstimatedDeliveryDate: coerceTime(v, "estimatedDeliveryDate", verr),
		EstimatedPrice:        coerceFloat(v, "estimatedPrice", verr),
	}
	f.PickupAddressID, _ = v.get("pickupAddressId")
	f.DeliveryAddressID, _ = v.get("deliveryAddressId")
	f.PackageID, _ = v.get("packageId")
	f.CustomerID, _ = v.get("customerId")
	f.Priority, _ = v.get("priority")

	if err := check(f, verr); err != nil {
		return nil, err
	}
	return f, nil
}

// coerceTime parses an optional timestamp field, accepting RFC 3339 or a
// bare date.
func coerceTime(v Values, key string, verr *apperr.ValidationError) *time.Time {
	s, ok := v.get(key)
	if !ok {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	verr.Add(key, "must be an RFC 3339 timestamp or YYYY-MM-DD date")
	return nil
}
