// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-autofill-vault/internal/tui"
	"github.com/MKhiriev/go-autofill-vault/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes one command line and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}

// UI is the interactive part of the client. [tui.TUI] implements it.
type UI interface {
	// Unlock asks for the master password and submits it with unlock until
	// it succeeds or the user gives up.
	Unlock(ctx context.Context, unlock tui.UnlockFunc) error

	// PickAccount returns the index of the record the user selected.
	PickAccount(ctx context.Context, records []models.CredentialRecord) (int, error)

	// EditCredential returns the credential the user entered, starting
	// from initial when it is not nil.
	EditCredential(ctx context.Context, initial *models.PlainCredential) (models.PlainCredential, error)
}
