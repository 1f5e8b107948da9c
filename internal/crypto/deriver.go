// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinIterations is the lowest accepted PBKDF2 iteration count.
	MinIterations = 100_000

	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// SaltSize is the persisted salt length in bytes.
	SaltSize = 16
)

// pbkdf2Deriver is the private implementation of [KeyDeriver].
type pbkdf2Deriver struct {
	iterations int
}

// NewKeyDeriver constructs a [KeyDeriver] running the given number of
// PBKDF2-HMAC-SHA256 iterations. A zero value selects [MinIterations].
func NewKeyDeriver(iterations int) KeyDeriver {
	if iterations == 0 {
		iterations = MinIterations
	}
	return &pbkdf2Deriver{iterations: iterations}
}

// Derive implements [KeyDeriver].
func (d *pbkdf2Deriver) Derive(masterPassword string, salt []byte) (*MasterKey, error) {
	if masterPassword == "" {
		return nil, fmt.Errorf("%w: %w", ErrDerivation, ErrEmptyPassword)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: %w: got %d bytes", ErrDerivation, ErrInvalidSalt, len(salt))
	}
	if d.iterations < MinIterations {
		return nil, fmt.Errorf("%w: %w: %d", ErrDerivation, ErrTooFewIterations, d.iterations)
	}

	raw := pbkdf2.Key([]byte(masterPassword), salt, d.iterations, KeySize, sha256.New)

	key, err := newMasterKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivation, err)
	}
	return key, nil
}
