package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed form input per field. It wraps
// ErrInvalid so callers can match the whole class with errors.Is.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates a ValidationError with an empty field map.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a message for a field.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty reports whether no field errors were recorded.
func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalid.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("invalid input: %s", strings.Join(keys, ", "))
}

// Unwrap makes errors.Is(err, ErrInvalid) hold for any ValidationError.
func (e *ValidationError) Unwrap() error { return ErrInvalid }
