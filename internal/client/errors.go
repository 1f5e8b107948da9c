// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingIndex    = errors.New("credential index is required")
	ErrInvalidIndex    = errors.New("credential index must be a non-negative integer")
	ErrIndexOutOfRange = errors.New("no credential at this index")

	// ErrStillLocked is returned when a retried request finds the vault
	// locked again.
	ErrStillLocked = errors.New("vault is still locked")
)
