package forms

import (
	"strings"
	"time"

	"shipping-service/internal/apperr"
)

// ShipmentForm is a normalized full-shipment creation record: both
// addresses, the package and the order attributes in one submission.
// Address fields arrive prefixed, e.g. "pickup.street", "delivery.city".
type ShipmentForm struct {
	Pickup                AddressForm `validate:"-"`
	Delivery              AddressForm `validate:"-"`
	Package               PackageForm `validate:"-"`
	CustomerID            string     `form:"customerId" validate:"required,uuid4"`
	Priority              string     `form:"priority" validate:"required,oneof=STANDARD EXPRESS URGENT SAME_DAY"`
	RequestedPickupDate   *time.Time `form:"requestedPickupDate"`
	EstimatedDeliveryDate *time.Time `form:"estimatedDeliveryDate"`
	EstimatedPrice        *float64   `form:"estimatedPrice" validate:"required,gte=0"`
}

// subValues extracts the fields under a dotted prefix, stripping it.
func subValues(v Values, prefix string) Values {
	out := make(Values)
	for key, val := range v {
		if strings.HasPrefix(key, prefix) {
			out[strings.TrimPrefix(key, prefix)] = val
		}
	}
	return out
}

// prefixFields re-keys a field error map under a dotted prefix.
func prefixFields(verr *apperr.ValidationError, prefix string, err error) {
	sub, ok := err.(*apperr.ValidationError)
	if !ok {
		return
	}
	for field, msgs := range sub.Fields {
		for _, msg := range msgs {
			verr.Add(prefix+field, msg)
		}
	}
}

// DecodeShipment coerces and validates raw full-shipment input. Field
// errors from the nested address and package sections are reported under
// their prefixed names.
func DecodeShipment(v Values) (*ShipmentForm, error) {
	verr := apperr.NewValidationError()

	f := &ShipmentForm{
		RequestedPickupDate:   coerceTime(v, "requestedPickupDate", verr),
		EstimatedDeliveryDate: coerceTime(v, "estimatedDeliveryDate", verr),
		EstimatedPrice:        coerceFloat(v, "estimatedPrice", verr),
	}
	f.CustomerID, _ = v.get("customerId")
	f.Priority, _ = v.get("priority")

	if pickup, err := DecodeAddress(subValues(v, "pickup.")); err != nil {
		prefixFields(verr, "pickup.", err)
	} else {
		f.Pickup = *pickup
	}

	if delivery, err := DecodeAddress(subValues(v, "delivery.")); err != nil {
		prefixFields(verr, "delivery.", err)
	} else {
		f.Delivery = *delivery
	}

	if pkg, err := DecodePackage(subValues(v, "package.")); err != nil {
		prefixFields(verr, "package.", err)
	} else {
		f.Package = *pkg
	}

	if err := check(f, verr); err != nil {
		return nil, err
	}
	return f, nil
}
