// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidSealedValue is returned when a JSON value can be neither an
// encrypted blob nor the empty sentinel.
var ErrInvalidSealedValue = errors.New("sealed value must be an encrypted object or an empty string")

// Bytes is a byte slice that serializes to base64 and accepts either base64
// strings or arrays of byte values on input.
type Bytes []byte

// MarshalJSON encodes b as a base64 string.
func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal([]byte(b))
}

// UnmarshalJSON decodes b from a base64 string or an array of integers in
// the range 0..255.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var values []int
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return fmt.Errorf("decode byte array: %w", err)
		}

		out := make([]byte, len(values))
		for i, v := range values {
			if v < 0 || v > 255 {
				return fmt.Errorf("byte value %d at index %d out of range", v, i)
			}
			out[i] = byte(v)
		}
		*b = out
		return nil
	}

	var raw []byte
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("decode base64 bytes: %w", err)
	}
	*b = raw
	return nil
}

// EncryptedBlob is the output of one AES-GCM seal operation: a 12-byte IV
// and the ciphertext with the authentication tag appended.
type EncryptedBlob struct {
	IV   Bytes `json:"iv"`
	Data Bytes `json:"data"`
}

// SealedValue is either an [EncryptedBlob] or the empty sentinel. The zero
// value is empty. On the wire the empty sentinel is the JSON string "".
type SealedValue struct {
	blob *EncryptedBlob
}

// EmptySealedValue returns the empty sentinel.
func EmptySealedValue() SealedValue {
	return SealedValue{}
}

// NewSealedValue wraps blob.
func NewSealedValue(blob EncryptedBlob) SealedValue {
	return SealedValue{blob: &blob}
}

// IsEmpty reports whether v is the empty sentinel.
func (v SealedValue) IsEmpty() bool {
	return v.blob == nil
}

// Blob returns the wrapped blob and true, or a zero blob and false for the
// empty sentinel.
func (v SealedValue) Blob() (EncryptedBlob, bool) {
	if v.blob == nil {
		return EncryptedBlob{}, false
	}
	return *v.blob, true
}

func (v SealedValue) MarshalJSON() ([]byte, error) {
	if v.blob == nil {
		return []byte(`""`), nil
	}
	return json.Marshal(v.blob)
}

// UnmarshalJSON accepts "", null, or an object. Objects are decoded as-is
// and their shape is checked only when decrypted.
func (v *SealedValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")), bytes.Equal(trimmed, []byte(`""`)):
		v.blob = nil
		return nil
	case len(trimmed) > 0 && trimmed[0] == '{':
		var blob EncryptedBlob
		if err := json.Unmarshal(trimmed, &blob); err != nil {
			return fmt.Errorf("decode encrypted blob: %w", err)
		}
		v.blob = &blob
		return nil
	default:
		return ErrInvalidSealedValue
	}
}
