// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-autofill-vault/internal/crypto"
	"github.com/MKhiriev/go-autofill-vault/models"
)

// KeyCustodian is the single owner of the in-memory master key.
type KeyCustodian interface {
	// RequestKey returns the key, suspending until an unlock when the vault
	// is locked. It fails with ErrKeyTimeout once the caller's own deadline
	// passes, or with the context error when ctx ends first.
	RequestKey(ctx context.Context) (*crypto.MasterKey, error)

	// SetKey stores key and resolves every pending waiter with it.
	SetKey(ctx context.Context, key *crypto.MasterKey)

	// HasKey never blocks.
	HasKey() bool

	// Lock destroys the key. It reports whether the vault was unlocked.
	Lock(ctx context.Context) bool

	// LockIfIdle locks the vault when the key has not been used for idle.
	LockIfIdle(ctx context.Context, idle time.Duration) bool

	// AwaitUnlocked blocks until the vault is unlocked or ctx ends, without
	// triggering a prompt.
	AwaitUnlocked(ctx context.Context) bool

	State() CustodianState
}

type CipherService interface {
	Encrypt(ctx context.Context, payload any) (models.EncryptedBlob, error)

	// Decrypt returns "" for the empty value without touching the key.
	Decrypt(ctx context.Context, value models.SealedValue) (any, error)
}

// VaultGateway answers every request with a tagged response. It never
// returns an error or panics across its boundary.
type VaultGateway interface {
	Handle(ctx context.Context, req models.Request) models.Response

	Unlock(ctx context.Context, password string) models.Response
	IsUnlocked(ctx context.Context) bool
	Encrypt(ctx context.Context, payload any) models.Response
	Decrypt(ctx context.Context, value models.SealedValue) models.Response
	Autofill(ctx context.Context, record models.CredentialRecord) models.Response
	Lock(ctx context.Context) models.Response

	// AwaitUnlock waits up to timeout for an unlock and reports the result.
	AwaitUnlock(ctx context.Context, timeout time.Duration) bool
}

type AutofillOrchestrator interface {
	Fill(ctx context.Context, record models.CredentialRecord) error
}

// CredentialService edits the persisted credential collection. Records are
// addressed by their position in the collection.
type CredentialService interface {
	List(ctx context.Context) ([]models.CredentialRecord, error)
	Add(ctx context.Context, credential models.PlainCredential) error
	Update(ctx context.Context, index int, credential models.PlainCredential) error
	Delete(ctx context.Context, index int) error
	Reveal(ctx context.Context, index int) (models.PlainCredential, error)
}

// CredentialServiceWrapper defines middleware composition for
// CredentialService, e.g. input validation.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetStatus(ctx context.Context) models.VaultStatus
}

// AutoLockJob locks an idle vault in the background.
type AutoLockJob interface {
	Run(ctx context.Context)
	Stop()
}
