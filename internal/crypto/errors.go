package crypto

import (
	"errors"

	"github.com/MKhiriev/go-autofill-vault/internal/app"
)

var (
	// ErrDerivation is the umbrella error for every key derivation failure.
	ErrDerivation = errors.New("key derivation failed")

	// ErrEmptyPassword indicates an empty master password.
	ErrEmptyPassword = errors.New("master password is empty")

	// ErrInvalidSalt indicates a salt of the wrong length.
	ErrInvalidSalt = errors.New("invalid salt length")

	// ErrTooFewIterations indicates a PBKDF2 iteration count below MinIterations.
	ErrTooFewIterations = errors.New("too few key derivation iterations")

	// ErrKeyDestroyed is returned when a destroyed MasterKey is used.
	ErrKeyDestroyed = errors.New("master key destroyed")

	// ErrInvalidBlob indicates an encrypted blob with a malformed IV or a
	// ciphertext too short to carry an authentication tag.
	ErrInvalidBlob = errors.New(app.MsgInvalidEncryptedData)

	// ErrAuthentication indicates an AES-GCM tag mismatch: wrong key or
	// tampered IV/ciphertext.
	ErrAuthentication = errors.New("message authentication failed")
)
