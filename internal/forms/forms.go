// Package forms validates raw form input against declared field constraints
// and produces normalized, typed records. Validation failure is a normal,
// reported outcome: callers receive a per-field error map, never a panic.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"shipping-service/internal/apperr"
)

// Values is raw field name → raw string value form input.
type Values map[string]string

// get returns the trimmed value and whether the field was present and non-empty.
func (v Values) get(key string) (string, bool) {
	s, ok := v[key]
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report errors under the form field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// check runs declarative tag validation over a decoded form and folds tag
// failures into the error collected during coercion.
func check(form any, verr *apperr.ValidationError) error {
	if err := validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			// a coercion error already explains this field
			if _, seen := verr.Fields[fe.Field()]; seen {
				continue
			}
			verr.Add(fe.Field(), messageFor(fe))
		}
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid4":
		return "must be a valid UUID"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return "is invalid"
	}
}

// coerceFloat parses an optional numeric field, recording a field error on
// malformed input. Returns nil when the field is absent or empty.
func coerceFloat(v Values, key string, verr *apperr.ValidationError) *float64 {
	s, ok := v.get(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		verr.Add(key, "must be a number")
		return nil
	}
	return &f
}

// coerceBool parses an optional boolean field accepting truthy-string forms.
func coerceBool(v Values, key string, def bool, verr *apperr.ValidationError) bool {
	s, ok := v.get(key)
	if !ok {
		return def
	}
	switch strings.ToLower(s) {
	case "true", "1", "on", "yes":
		return true
	case "false", "0", "off", "no":
		return false
	default:
		verr.Add(key, "must be a boolean")
		return def
	}
}

// optString returns a pointer to the trimmed value, or nil when absent.
func optString(v Values, key string) *string {
	s, ok := v.get(key)
	if !ok {
		return nil
	}
	return &s
}
