package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-autofill-vault/internal/crypto"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/models"
)

type cipherService struct {
	custodian KeyCustodian

	logger *logger.Logger
}

// NewCipherService returns an AES-256-GCM CipherService that obtains the
// key from custodian for every call.
func NewCipherService(custodian KeyCustodian, log *logger.Logger) CipherService {
	return &cipherService{custodian: custodian, logger: log}
}

// Encrypt serializes payload as JSON, strings included, so that Decrypt
// restores the same value.
func (s *cipherService) Encrypt(ctx context.Context, payload any) (models.EncryptedBlob, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("%w: encode payload: %w", ErrCrypto, err)
	}
	defer memguard.WipeBytes(plaintext)

	var blob models.EncryptedBlob
	err = s.withKey(ctx, func(key *crypto.MasterKey) error {
		var sealErr error
		blob, sealErr = key.Seal(plaintext)
		return sealErr
	})
	if err != nil {
		if isKeyAcquisitionError(err) {
			return models.EncryptedBlob{}, err
		}
		return models.EncryptedBlob{}, fmt.Errorf("%w: %w", ErrCrypto, err)
	}

	return blob, nil
}

func (s *cipherService) Decrypt(ctx context.Context, value models.SealedValue) (any, error) {
	blob, ok := value.Blob()
	if !ok {
		return "", nil
	}

	var plaintext []byte
	err := s.withKey(ctx, func(key *crypto.MasterKey) error {
		var openErr error
		plaintext, openErr = key.Open(blob)
		return openErr
	})
	switch {
	case err == nil:
	case errors.Is(err, crypto.ErrInvalidBlob), errors.Is(err, crypto.ErrAuthentication):
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	case isKeyAcquisitionError(err):
		return nil, err
	default:
		return nil, fmt.Errorf("%w: %w", ErrCrypto, err)
	}
	defer memguard.WipeBytes(plaintext)

	var structured any
	if err := json.Unmarshal(plaintext, &structured); err != nil {
		return string(plaintext), nil
	}
	return structured, nil
}

// withKey runs fn with the custodied key. A key destroyed between
// acquisition and use (lock or re-unlock) is requested once more.
func (s *cipherService) withKey(ctx context.Context, fn func(key *crypto.MasterKey) error) error {
	for attempt := 0; ; attempt++ {
		key, err := s.custodian.RequestKey(ctx)
		if err != nil {
			return keyAcquisitionError{err}
		}

		err = fn(key)
		if errors.Is(err, crypto.ErrKeyDestroyed) && attempt == 0 {
			s.logger.Debug().Msg("master key replaced during operation, retrying")
			continue
		}
		return err
	}
}

// keyAcquisitionError marks failures of RequestKey so they are propagated
// as they are.
type keyAcquisitionError struct{ err error }

func (e keyAcquisitionError) Error() string { return e.err.Error() }
func (e keyAcquisitionError) Unwrap() error { return e.err }

func isKeyAcquisitionError(err error) bool {
	var target keyAcquisitionError
	return errors.As(err, &target)
}
