package forms

import (
	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
)

// AddressForm is a normalized address creation record.
type AddressForm struct {
	Street    string   `form:"street" validate:"required,max=255"`
	City      string   `form:"city" validate:"required,max=100"`
	State     string   `form:"state" validate:"required,max=50"`
	ZipCode   string   `form:"zipCode" validate:"required,max=10"`
	Country   string   `form:"country" validate:"max=50"`
	Latitude  *float64 `form:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `form:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// DecodeAddress coerces and validates raw address input.
func DecodeAddress(v Values) (*AddressForm, error) {
	verr := apperr.NewValidationError()

	f := &AddressForm{
		Country:   domain.DefaultCountry,
		Latitude:  coerceFloat(v, "latitude", verr),
		Longitude: coerceFloat(v, "longitude", verr),
	}
	f.Street, _ = v.get("street")
	f.City, _ = v.get("city")
	f.State, _ = v.get("state")
	f.ZipCode, _ = v.get("zipCode")
	if c, ok := v.get("country"); ok {
		f.Country = c
	}

	if err := check(f, verr); err != nil {
		return nil, err
	}
	return f, nil
}
