// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-autofill-vault/models"
)

// NonceSize is the AES-GCM IV length in bytes.
const NonceSize = 12

// MasterKey is the symmetric vault key. The key bytes live in a memguard
// enclave (encrypted, guarded memory) and never leave this package: callers
// can only seal and open blobs with it.
//
// A MasterKey is safe for concurrent use. After Destroy every operation
// fails with [ErrKeyDestroyed].
type MasterKey struct {
	mu      sync.RWMutex
	enclave *memguard.Enclave
}

// newMasterKey moves raw into a new enclave. raw is wiped.
func newMasterKey(raw []byte) (*MasterKey, error) {
	if len(raw) != KeySize {
		memguard.WipeBytes(raw)
		return nil, fmt.Errorf("unexpected key length %d", len(raw))
	}

	enclave := memguard.NewEnclave(raw)
	if enclave == nil {
		return nil, errors.New("create key enclave")
	}
	return &MasterKey{enclave: enclave}, nil
}

// withKey opens the enclave for the duration of fn.
func (k *MasterKey) withKey(fn func(key []byte) error) error {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.enclave == nil {
		return ErrKeyDestroyed
	}

	buf, err := k.enclave.Open()
	if err != nil {
		return fmt.Errorf("open key enclave: %w", err)
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}

// Seal encrypts plaintext with AES-256-GCM under a fresh random IV.
func (k *MasterKey) Seal(plaintext []byte) (models.EncryptedBlob, error) {
	var blob models.EncryptedBlob
	err := k.withKey(func(key []byte) error {
		gcm, err := newGCM(key)
		if err != nil {
			return err
		}

		nonce := make([]byte, NonceSize)
		if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
			return fmt.Errorf("generate nonce: %w", err)
		}

		blob = models.EncryptedBlob{
			IV:   nonce,
			Data: gcm.Seal(nil, nonce, plaintext, nil),
		}
		return nil
	})
	return blob, err
}

// Open authenticates and decrypts blob. A blob with an IV that is not
// [NonceSize] bytes, or data shorter than the tag, fails with
// [ErrInvalidBlob]; a tag mismatch fails with [ErrAuthentication].
func (k *MasterKey) Open(blob models.EncryptedBlob) ([]byte, error) {
	var plaintext []byte
	err := k.withKey(func(key []byte) error {
		gcm, err := newGCM(key)
		if err != nil {
			return err
		}

		if len(blob.IV) != gcm.NonceSize() || len(blob.Data) < gcm.Overhead() {
			return ErrInvalidBlob
		}

		plaintext, err = gcm.Open(nil, blob.IV, blob.Data, nil)
		if err != nil {
			return ErrAuthentication
		}
		return nil
	})
	return plaintext, err
}

// Equal reports whether k and other hold the same key bytes. The comparison
// is constant-time.
func (k *MasterKey) Equal(other *MasterKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	if k == other {
		return true
	}

	equal := false
	_ = k.withKey(func(a []byte) error {
		return other.withKey(func(b []byte) error {
			equal = subtle.ConstantTimeCompare(a, b) == 1
			return nil
		})
	})
	return equal
}

// Destroy drops the enclave. The key is unusable afterwards.
func (k *MasterKey) Destroy() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.enclave = nil
}

// Destroyed reports whether Destroy has been called.
func (k *MasterKey) Destroyed() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.enclave == nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return gcm, nil
}
