package crypto

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"

	"golang.org/x/crypto/pbkdf2"
)

func testSalt() []byte {
	salt := make([]byte, SaltSize)
	for i := range salt {
		salt[i] = byte(i + 1) // 0x01..0x10
	}
	return salt
}

func TestDerive_DeterministicForSameInputs(t *testing.T) {
	d := NewKeyDeriver(0)

	k1, err := d.Derive("correct-horse", testSalt())
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	k2, err := d.Derive("correct-horse", testSalt())
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if !k1.Equal(k2) {
		t.Fatalf("expected identical keys for the same password and salt")
	}
}

func TestDerive_MatchesPBKDF2SHA256(t *testing.T) {
	d := NewKeyDeriver(MinIterations)
	key, err := d.Derive("correct-horse", testSalt())
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	want := pbkdf2.Key([]byte("correct-horse"), testSalt(), MinIterations, KeySize, sha256.New)
	err = key.withKey(func(got []byte) error {
		if !bytes.Equal(got, want) {
			t.Fatalf("derived key mismatch")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("withKey error: %v", err)
	}
}

func TestDerive_DifferentSaltOrPasswordProducesDifferentKey(t *testing.T) {
	d := NewKeyDeriver(0)
	base, err := d.Derive("correct-horse", testSalt())
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	otherSalt := bytes.Repeat([]byte{0xAB}, SaltSize)
	k2, err := d.Derive("correct-horse", otherSalt)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	k3, err := d.Derive("battery-staple", testSalt())
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if base.Equal(k2) {
		t.Fatalf("different salt must produce a different key")
	}
	if base.Equal(k3) {
		t.Fatalf("different password must produce a different key")
	}
}

func TestDerive_Failures(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		password   string
		salt       []byte
		wantErr    error
	}{
		{"empty password", 0, "", testSalt(), ErrEmptyPassword},
		{"short salt", 0, "pw", []byte{1, 2, 3}, ErrInvalidSalt},
		{"too few iterations", 1000, "pw", testSalt(), ErrTooFewIterations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeyDeriver(tt.iterations).Derive(tt.password, tt.salt)
			if !errors.Is(err, ErrDerivation) {
				t.Fatalf("expected ErrDerivation, got %v", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize || len(s2) != SaltSize {
		t.Fatalf("salt lengths = %d, %d, want %d", len(s1), len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}
