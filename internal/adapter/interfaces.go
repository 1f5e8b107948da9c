// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the boundary implementations the vault talks to:
// the unlock prompt surface, the autofill presentation surfaces, the
// destination locator, and the HTTP client vaultctl uses to reach the
// daemon.
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] regardless of the underlying protocol.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-autofill-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PromptSurface is the UI that asks the user for the master password. The
// vault only opens and closes it; the surface delivers the password back
// through the gateway's setMasterPassword action.
type PromptSurface interface {
	// Open shows the prompt. Opening an already open prompt is a no-op.
	Open(ctx context.Context) error

	// Close dismisses the prompt if it is open.
	Close(ctx context.Context) error
}

// FillSurface presents decrypted credentials to the user at a destination.
type FillSurface interface {
	// Ping reports whether a fill agent is alive at dest.
	Ping(ctx context.Context, dest models.Destination) bool

	// Inject starts a fill agent at dest.
	Inject(ctx context.Context, dest models.Destination) error

	// Present hands data to the agent at dest. The returned error is the
	// surface's own result and is reported to the caller unchanged.
	Present(ctx context.Context, dest models.Destination, data models.FillData) error
}

// Locator resolves where an account's sign-in form lives.
type Locator interface {
	// Locate returns the destination for accountID, scoped to containerID
	// when it is not empty.
	Locate(ctx context.Context, accountID, containerID string) (models.Destination, error)
}

// VaultClient is the vaultctl side of the daemon's HTTP API.
//
// Any call that needs the key can fail with [ErrMasterPasswordNotProvided]
// when nobody unlocked the vault in time; callers may unlock (or wait with
// AwaitUnlock) and retry once.
type VaultClient interface {
	// Unlock sends the master password.
	Unlock(ctx context.Context, password string) error

	// HasKey reports whether the vault is unlocked. It never blocks on the
	// daemon side.
	HasKey(ctx context.Context) (bool, error)

	// Status returns the daemon version and key state.
	Status(ctx context.Context) (models.VaultStatus, error)

	// Lock discards the key held by the daemon.
	Lock(ctx context.Context) error

	// Encrypt seals payload (a string or any JSON value).
	Encrypt(ctx context.Context, payload any) (models.EncryptedBlob, error)

	// Decrypt opens value. The empty sentinel decrypts to "".
	Decrypt(ctx context.Context, value models.SealedValue) (any, error)

	// Autofill asks the daemon to fill record's sign-in form.
	Autofill(ctx context.Context, record models.CredentialRecord) error

	// AwaitUnlock blocks until the vault is unlocked or timeout elapses and
	// reports whether it is unlocked.
	AwaitUnlock(ctx context.Context, timeout time.Duration) (bool, error)

	// ListCredentials returns the stored (encrypted) records.
	ListCredentials(ctx context.Context) ([]models.CredentialRecord, error)

	// AddCredential encrypts and appends a record.
	AddCredential(ctx context.Context, credential models.PlainCredential) error

	// UpdateCredential replaces the record at index.
	UpdateCredential(ctx context.Context, index int, credential models.PlainCredential) error

	// DeleteCredential removes the record at index.
	DeleteCredential(ctx context.Context, index int) error

	// RevealCredential returns the decrypted record at index.
	RevealCredential(ctx context.Context, index int) (models.PlainCredential, error)
}
