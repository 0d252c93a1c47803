// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSellerAlreadyExists is returned when inserting a seller fails
	// because a row with the same uid is already present.
	ErrSellerAlreadyExists = errors.New("seller already exists")

	// ErrSellerNotFound is returned when a query expected to match exactly
	// one seller produces an empty result set.
	ErrSellerNotFound = errors.New("seller was not found")

	// ErrProductNotFound is returned when a query expected to match exactly
	// one product produces an empty result set.
	ErrProductNotFound = errors.New("product was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// statement fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when copying a single result row into a
	// model fails.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when iterating or copying a multi-row
	// result set fails.
	ErrScanningRows = errors.New("error scanning rows")
)
