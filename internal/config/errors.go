// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	// ErrNoAPIKey is returned by validation when no shared API key was
	// supplied through any configuration source.
	ErrNoAPIKey = errors.New("no API key provided")

	// ErrNoDatabaseSettings is returned by validation when neither a DSN nor
	// discrete database connection fields were supplied.
	ErrNoDatabaseSettings = errors.New("no database connection settings provided")
)
