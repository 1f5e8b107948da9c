package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-autofill-vault/models"
)

// CredentialsKey is the storage key of the credential collection.
const CredentialsKey = "credentials"

type credentialStore struct {
	kv KeyValueStorage
}

// NewCredentialStore returns a [CredentialStore] persisting into kv.
func NewCredentialStore(kv KeyValueStorage) CredentialStore {
	return &credentialStore{kv: kv}
}

func (s *credentialStore) Load(ctx context.Context) ([]models.CredentialRecord, error) {
	raw, err := s.kv.Get(ctx, CredentialsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.CredentialRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	records := make([]models.CredentialRecord, 0)
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrCorruptedValue, err)
	}
	return records, nil
}

func (s *credentialStore) Save(ctx context.Context, records []models.CredentialRecord) error {
	if records == nil {
		records = []models.CredentialRecord{}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encode credentials: %w", ErrStorage, err)
	}
	if err := s.kv.Set(ctx, CredentialsKey, raw); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
