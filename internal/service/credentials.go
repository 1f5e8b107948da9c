package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/store"
	"github.com/MKhiriev/go-autofill-vault/models"
)

type credentialService struct {
	store  store.CredentialStore
	cipher CipherService

	// mu serializes the load-modify-save cycle.
	mu sync.Mutex

	logger *logger.Logger
}

func NewCredentialService(credentials store.CredentialStore, cipher CipherService, log *logger.Logger) CredentialService {
	return &credentialService{store: credentials, cipher: cipher, logger: log}
}

func (s *credentialService) List(ctx context.Context) ([]models.CredentialRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Load(ctx)
}

func (s *credentialService) Add(ctx context.Context, credential models.PlainCredential) error {
	record, err := s.seal(ctx, credential)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if err = s.store.Save(ctx, append(records, record)); err != nil {
		return err
	}

	s.logger.Info().Str("account", credential.AccountLabel).Int("count", len(records)+1).Msg("credential added")
	return nil
}

func (s *credentialService) Update(ctx context.Context, index int, credential models.PlainCredential) error {
	record, err := s.seal(ctx, credential)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return fmt.Errorf("%w: index %d", ErrCredentialNotFound, index)
	}

	records[index] = record
	return s.store.Save(ctx, records)
}

func (s *credentialService) Delete(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return fmt.Errorf("%w: index %d", ErrCredentialNotFound, index)
	}

	records = append(records[:index], records[index+1:]...)
	return s.store.Save(ctx, records)
}

func (s *credentialService) Reveal(ctx context.Context, index int) (models.PlainCredential, error) {
	s.mu.Lock()
	records, err := s.store.Load(ctx)
	s.mu.Unlock()
	if err != nil {
		return models.PlainCredential{}, err
	}
	if index < 0 || index >= len(records) {
		return models.PlainCredential{}, fmt.Errorf("%w: index %d", ErrCredentialNotFound, index)
	}
	record := records[index]

	username, err := s.cipher.Decrypt(ctx, record.Username)
	if err != nil {
		return models.PlainCredential{}, fmt.Errorf("decrypt username: %w", err)
	}
	password, err := s.cipher.Decrypt(ctx, record.Password)
	if err != nil {
		return models.PlainCredential{}, fmt.Errorf("decrypt password: %w", err)
	}

	return models.PlainCredential{
		AccountLabel: record.AccountLabel,
		AccountID:    record.AccountID,
		Username:     asText(username),
		Password:     asText(password),
		ContainerID:  record.ContainerID,
	}, nil
}

// seal encrypts the secret fields of credential. The key is requested
// before any stored state is touched, so a locked vault leaves the
// collection unchanged.
func (s *credentialService) seal(ctx context.Context, credential models.PlainCredential) (models.CredentialRecord, error) {
	username, err := s.cipher.Encrypt(ctx, credential.Username)
	if err != nil {
		return models.CredentialRecord{}, fmt.Errorf("encrypt username: %w", err)
	}

	password := models.EmptySealedValue()
	if credential.Password != "" {
		blob, err := s.cipher.Encrypt(ctx, credential.Password)
		if err != nil {
			return models.CredentialRecord{}, fmt.Errorf("encrypt password: %w", err)
		}
		password = models.NewSealedValue(blob)
	}

	return models.CredentialRecord{
		AccountLabel: credential.AccountLabel,
		AccountID:    credential.AccountID,
		Username:     models.NewSealedValue(username),
		Password:     password,
		ContainerID:  credential.ContainerID,
	}, nil
}
