package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-autofill-vault/internal/crypto"
)

// SaltKey is the storage key of the key derivation salt.
const SaltKey = "encryptionSalt"

type saltStore struct {
	kv       KeyValueStorage
	generate func() ([]byte, error)
	mu       sync.Mutex
}

// NewSaltStore returns a [SaltStore] persisting into kv.
func NewSaltStore(kv KeyValueStorage) SaltStore {
	return &saltStore{kv: kv, generate: crypto.GenerateSalt}
}

func (s *saltStore) GetOrCreateSalt(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	salt, err := s.kv.Get(ctx, SaltKey)
	switch {
	case err == nil:
		if len(salt) != crypto.SaltSize {
			return nil, fmt.Errorf("%w: %w: salt has %d bytes", ErrStorage, ErrCorruptedValue, len(salt))
		}
		return salt, nil
	case !errors.Is(err, ErrKeyNotFound):
		return nil, fmt.Errorf("read salt: %w", err)
	}

	salt, err = s.generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err := s.kv.Set(ctx, SaltKey, salt); err != nil {
		return nil, fmt.Errorf("persist salt: %w", err)
	}

	return bytes.Clone(salt), nil
}
