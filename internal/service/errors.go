package service

import (
	"errors"

	"github.com/MKhiriev/go-autofill-vault/internal/app"
)

var (
	// ErrKeyTimeout means no master key arrived before a waiter's deadline.
	// It is the one condition callers may retry after unlocking.
	ErrKeyTimeout = errors.New("timed out waiting for master key")

	ErrDecryption   = errors.New("decryption failed")
	ErrCrypto       = errors.New("cipher provider failure")
	ErrPresentation = errors.New("presentation failed")

	ErrCredentialNotFound    = errors.New(app.MsgCredentialNotFound)
	ErrInvalidCredential     = errors.New(app.MsgInvalidDataProvided)
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
