// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks relay requests before they reach the mailbox.
//
// A Validator accepts any value it knows about and an optional list of field
// names. With no field names every rule for the value is applied; with field
// names only those rules run. Unknown values yield ErrUnsupportedType and
// unknown field names yield ErrUnknownField.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
