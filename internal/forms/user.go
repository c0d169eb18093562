package forms

import "shipping-service/internal/apperr"

// RegisterForm is a normalized user registration record.
type RegisterForm struct {
	Email    string `form:"email" validate:"required,email,max=255"`
	Password string `form:"password" validate:"required,min=8,max=72"`
	Role     string `form:"role" validate:"oneof=CUSTOMER COURIER ADMIN SUPPORT"`
}

// DecodeRegister coerces and validates raw registration input. Role defaults
// to CUSTOMER.
func DecodeRegister(v Values) (*RegisterForm, error) {
	verr := apperr.NewValidationError()

	f := &RegisterForm{Role: "CUSTOMER"}
	f.Email, _ = v.get("email")
	f.Password, _ = v.get("password")
	if r, ok := v.get("role"); ok {
		f.Role = r
	}

	if err := check(f, verr); err != nil {
		return nil, err
	}
	return f, nil
}

// LoginForm is a normalized login record.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// DecodeLogin coerces and validates raw login input.
func DecodeLogin(v Values) (*LoginForm, error) {
	verr := apperr.NewValidationError()

	f := &LoginForm{}
	f.Email, _ = v.get("email")
	f.Password, _ = v.get("password")

	if err := check(f, verr); err != nil {
		return nil, err
	}
	return f, nil
}
