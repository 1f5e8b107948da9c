// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the caller authentication middleware.
var (
	// ErrEmptyAuthorizationHeader is returned when a request carries no
	// "Authorization" header while tokens are required.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidIndex is returned when the {index} path parameter is not a
	// non-negative integer.
	ErrInvalidIndex = errors.New("credential index must be a non-negative integer")

	// ErrInvalidTimeout is returned when the wait endpoint's timeout query
	// parameter cannot be parsed.
	ErrInvalidTimeout = errors.New("invalid timeout")
)
