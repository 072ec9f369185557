// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks requests against the record store before they
// touch any state.
//
// A Validator validates a value as a whole, or only the named fields when
// field names are passed to Validate. Field names are the Field* constants
// of the implementation.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
