// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"errors"
	"strings"
)

// ErrValidation is the sentinel wrapped by every [ValidationError]. The HTTP
// layer matches against it with errors.Is to answer 400.
var ErrValidation = errors.New("validation failed")

// ErrUnsupportedType is returned when a validator receives a payload type it
// does not know how to check.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// FieldError describes a single constraint violation on a named field.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string `json:"field"`

	// Message is a human-readable description of the violated constraint.
	Message string `json:"message"`
}

// ValidationError aggregates every constraint violation found in a payload.
// It wraps [ErrValidation] so callers can match it without depending on the
// concrete type.
type ValidationError struct {
	Fields []FieldError
}

// Error joins all field violations into a single message suitable for the
// error response body.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes [ErrValidation] for errors.Is matching.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
