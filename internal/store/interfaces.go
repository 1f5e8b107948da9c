package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-autofill-vault/models"
)

// KeyValueStorage is the persistence medium of the vault: a flat map from
// string keys to opaque byte values. Implementations must be safe for
// concurrent use.
type KeyValueStorage interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	// Any other failure wraps [ErrStorage].
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	// Failures wrap [ErrStorage].
	Set(ctx context.Context, key string, value []byte) error
}

// SaltStore owns the single persisted key derivation salt.
type SaltStore interface {
	// GetOrCreateSalt returns the persisted salt. On first use it generates
	// and persists a fresh random salt; afterwards the stored value is
	// returned unchanged. A stored value of the wrong length is reported as
	// corruption, never silently regenerated.
	GetOrCreateSalt(ctx context.Context) ([]byte, error)
}

// CredentialStore persists the credential collection as one JSON document.
type CredentialStore interface {
	// Load returns every stored record, or an empty slice when none exist.
	Load(ctx context.Context) ([]models.CredentialRecord, error)

	// Save replaces the stored collection with records.
	Save(ctx context.Context, records []models.CredentialRecord) error
}
