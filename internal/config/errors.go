package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// inconsistent.
var (
	// ErrInvalidVaultConfigs indicates bad key derivation or custody
	// settings (for example, too few KDF iterations).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// request timeout that cannot cover an unlock wait.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a missing daemon address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidFillConfigs indicates an unknown fill mode or missing agent
	// settings.
	ErrInvalidFillConfigs = errors.New("invalid fill configuration")
	// ErrInvalidAppConfigs indicates incomplete caller-token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
