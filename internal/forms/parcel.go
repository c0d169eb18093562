package forms

import "shipping-service/internal/apperr"

// PackageForm is a normalized package creation record.
type PackageForm struct {
	Type                string   `form:"type" validate:"required,oneof=ENVELOPE SMALL_PACKAGE MEDIUM_PACKAGE LARGE_PACKAGE FRAGILE FOOD_DELIVERY DOCUMENTS"`
	WeightKg            *float64 `form:"weightKg" validate:"required,gt=0"`
	Dimensions          *string  `form:"dimensions" validate:"omitempty,max=50"`
	IsFragile           bool     `form:"isFragile"`
	SpecialInstructions *string  `form:"specialInstructions"`
	DeclaredValue       float64  `form:"declaredValue" validate:"gte=0"`
}

// DecodePackage coerces and validates raw package input. DeclaredValue
// defaults to 0 and IsFragile to false, matching the declared shape.
func DecodePackage(v Values) (*PackageForm, error) {
	verr := apperr.NewValidationError()

	f := &PackageForm{
		WeightKg:            coerceFloat(v, "weightKg", verr),
		Dimensions:          optString(v, "dimensions"),
		IsFragile:           coerceBool(v, "isFragile", false, verr),
		SpecialInstructions: optString(v, "specialInstructions"),
	}
	f.Type, _ = v.get("type")
	if dv := coerceFloat(v, "declaredValue", verr); dv != nil {
		f.DeclaredValue = *dv
	}

	if err := check(f, verr); err != nil {
		return nil, err
	}
	return f, nil
}
