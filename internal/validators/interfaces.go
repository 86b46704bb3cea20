// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user supplied account and guide input before it
// reaches the credential store: registration and login bodies, partial
// profile updates and guide title/content.
//
// Limits mirror the column sizes of the users and guides tables, so input
// that passes validation never fails in the database for its length.
package validators

import "context"

// Validator validates account and guide request bodies.
type Validator interface {
	// Validate checks input, one of the models request types, value or
	// pointer. fields restricts the check to the named fields; none means
	// every field of the request. Profile updates are always partial, and
	// guide requests take [FieldUpdate] for the partial form.
	Validate(ctx context.Context, input any, fields ...string) error
}
