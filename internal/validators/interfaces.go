package validators

import "context"

// Validator checks an incoming payload against its declared per-field
// constraints before it may reach the storage layer.
//
// Optional field names restrict validation to extra checks beyond the
// declared struct constraints (e.g. [FieldID] for product updates, where the
// target identifier travels in the body).
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
