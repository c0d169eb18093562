package forms

import "shipping-service/internal/apperr"

// TrackingForm is a normalized tracking event record.
type TrackingForm struct {
	OrderID   string   `form:"orderId" validate:"required,uuid4"`
	Status    string   `form:"status" validate:"required,oneof=PENDING ACCEPTED PICKED_UP IN_TRANSIT OUT_FOR_DELIVERY DELIVERED CANCELLED FAILED_DELIVERY"`
	Message   *string  `form:"message"`
	Latitude  *float64 `form:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `form:"longitude" validate:"omitempty,gte=-180,lte=180"`
	UpdatedBy string   `form:"updatedBy" validate:"required,uuid4"`
}

// DecodeTracking coerces and validates raw tracking event input.
func DecodeTracking(v Values) (*TrackingForm, error) {
	verr := apperr.NewValidationError()

	f := &TrackingForm{
		Message:   optString(v, "message"),
		Latitude:  coerceFloat(v, "latitude", verr),
		Longitude: coerceFloat(v, "longitude", verr),
	}
	f.OrderID, _ = v.get("orderId")
	f.Status, _ = v.get("status")
	f.UpdatedBy, _ = v.get("updatedBy")

	if err := check(f, verr); err != nil {
		return nil, err
	}
	return f, nil
}
