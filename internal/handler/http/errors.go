// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

var (
	// ErrInvalidJSONBody is returned to the client when a request body
	// cannot be decoded into the expected payload shape.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")

	// ErrInvalidIdentifier is returned to the client when a numeric path
	// parameter cannot be parsed.
	ErrInvalidIdentifier = errors.New("invalid identifier in URL")
)
