package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// GenerateSalt reads [SaltSize] bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("read random salt: %w", err)
	}
	return salt, nil
}
