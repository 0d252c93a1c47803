// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/feira-digital/mercado-api/models"
)

// Field name constants used to request extra checks beyond the declared
// struct constraints.
const (
	// FieldID requires a positive database identifier on the payload. Used by
	// product update, where the target id travels in the request body.
	FieldID = "id"
)

// EntityValidator implements [Validator] for the seller and product payloads
// using declarative go-playground/validator constraints defined as struct
// tags on the models.
//
// Payloads are normalized (whitespace-trimmed) in place before checking, so
// length bounds always apply to the values that will be persisted.
type EntityValidator struct {
	validate *validator.Validate
}

// NewEntityValidator constructs an [EntityValidator]. Violation messages use
// the json tag name of the offending field so they match what the client sent.
func NewEntityValidator() Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &EntityValidator{validate: v}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Only pointer forms are accepted because
// normalization mutates the payload.
//
// Supported types:
//   - *models.Seller
//   - *models.Product
//
// Returns [ErrUnsupportedType] if obj does not match any known model, and a
// *[ValidationError] listing every violated field otherwise.
func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.Seller:
		return v.validateSeller(ctx, value, fields...)
	case *models.Product:
		return v.validateProduct(ctx, value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *EntityValidator) validateSeller(ctx context.Context, seller *models.Seller, _ ...string) error {
	seller.Normalize()

	return v.structErrors(ctx, seller, nil)
}

func (v *EntityValidator) validateProduct(ctx context.Context, product *models.Product, fields ...string) error {
	product.Normalize()

	var extra []FieldError
	for _, field := range fields {
		if field == FieldID && product.ID < 1 {
			extra = append(extra, FieldError{Field: FieldID, Message: "must be a positive identifier"})
		}
	}

	return v.structErrors(ctx, product, extra)
}

// structErrors runs the declared struct constraints and merges the result
// with any extra violations collected by the caller.
func (v *EntityValidator) structErrors(ctx context.Context, obj any, extra []FieldError) error {
	fieldErrors := extra

	if err := v.validate.StructCtx(ctx, obj); err != nil {
		var violations validator.ValidationErrors
		if !errors.As(err, &violations) {
			return err
		}

		for _, violation := range violations {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   violation.Field(),
				Message: constraintMessage(violation),
			})
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return &ValidationError{Fields: fieldErrors}
}

// constraintMessage renders a single violated constraint in a form readable
// without knowledge of validator tag names.
func constraintMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + violation.Param() + " characters"
	case "max":
		return "must be at most " + violation.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + violation.Param()
	default:
		return "failed the '" + violation.Tag() + "' constraint"
	}
}
