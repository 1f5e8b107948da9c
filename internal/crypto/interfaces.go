package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a master password into the vault [MasterKey].
//
// Derivation is a pure function of (masterPassword, salt): the same pair
// always yields the same key, which is what lets a restarted daemon decrypt
// records written before the restart. The salt is not secret; it is stored
// next to the data and only prevents precomputed attacks.
type KeyDeriver interface {
	// Derive runs PBKDF2-HMAC-SHA256 over masterPassword and salt and returns
	// the resulting 256-bit key sealed in protected memory.
	//
	// Returns an error wrapping [ErrDerivation] when the password is empty,
	// the salt is not [SaltSize] bytes, the configured iteration count is
	// below [MinIterations], or the key cannot be sealed.
	Derive(masterPassword string, salt []byte) (*MasterKey, error)
}
