// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks editor input before it reaches the credential
// store: required account identifier and username, identifier shape, field
// lengths and record indexes.
//
// Validation can be scoped to named fields (the Field* constants), so a
// caller may check a single value without building a full record.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
