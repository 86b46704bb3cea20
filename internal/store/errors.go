// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT or UPDATE violates the
	// unique username or email constraint.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a query expected to match one user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrGuideNotFound is returned when a guide with the requested id does
	// not exist.
	ErrGuideNotFound = errors.New("guide was not found")

	// ErrAuthorNotFound is returned when a guide references a user that does
	// not exist (foreign key violation).
	ErrAuthorNotFound = errors.New("guide author was not found")

	// ErrNothingToUpdate is returned when a partial update carries no field.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
