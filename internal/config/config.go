// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the vault
// daemon and its client. It is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: log level, caller tokens, version.
	App App `envPrefix:"APP_"`

	// Vault holds key derivation and key custody settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Storage holds the local key-value database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the daemon's HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's connection settings for reaching the daemon.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Prompt holds the unlock prompt surface settings.
	Prompt Prompt `envPrefix:"PROMPT_"`

	// Fill holds the autofill presentation surface settings.
	Fill Fill `envPrefix:"FILL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the shared secret used to sign and verify caller
	// tokens. When empty, the daemon accepts unauthenticated requests on
	// its loopback address.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of caller tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a minted caller token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Caller is the name the client puts in the "sub" claim.
	// Env: APP_CALLER
	Caller string `env:"CALLER"`

	// Version is the application version exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Vault holds key derivation and custody settings.
type Vault struct {
	// KDFIterations is the PBKDF2 iteration count. Must be at least 100000.
	// Env: VAULT_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// KeyWaitTimeout is how long a request waits for an unlock before it
	// fails with "Master password not provided".
	// Env: VAULT_KEY_WAIT_TIMEOUT
	KeyWaitTimeout time.Duration `env:"KEY_WAIT_TIMEOUT"`

	// AutoLockAfter locks the vault after this much inactivity. Zero
	// disables auto-lock.
	// Env: VAULT_AUTO_LOCK_AFTER
	AutoLockAfter time.Duration `env:"AUTO_LOCK_AFTER"`

	// AutoLockInterval is how often the auto-lock job checks for idleness.
	// Env: VAULT_AUTO_LOCK_INTERVAL
	AutoLockInterval time.Duration `env:"AUTO_LOCK_INTERVAL"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite key-value store.
type DB struct {
	// DSN is the SQLite file path or DSN. ":memory:" selects an in-memory
	// store that does not survive a restart.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds the daemon's HTTP listener settings.
type Server struct {
	// HTTPAddress is the loopback address the daemon listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request, including time spent waiting
	// for an unlock. It must exceed Vault.KeyWaitTimeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound connection settings.
type Adapter struct {
	// HTTPAddress is the daemon address the client connects to.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds one client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Prompt holds unlock prompt settings.
type Prompt struct {
	// Command is the command line the daemon launches when a master
	// password is needed (e.g. "vaultctl unlock"). When empty, the daemon
	// only logs that an unlock is required.
	// Env: PROMPT_COMMAND
	Command string `env:"COMMAND"`
}

// Fill holds autofill presentation settings.
type Fill struct {
	// Mode selects the presentation surface: "agent" or "clipboard".
	// Env: FILL_MODE
	Mode string `env:"MODE"`

	// AgentAddress is the base URL of the local fill agent.
	// Env: FILL_AGENT_ADDRESS
	AgentAddress string `env:"AGENT_ADDRESS"`

	// AgentTimeout bounds one request to the fill agent.
	// Env: FILL_AGENT_TIMEOUT
	AgentTimeout time.Duration `env:"AGENT_TIMEOUT"`

	// SignInURL is the destination template; %s is replaced with the
	// account identifier.
	// Env: FILL_SIGN_IN_URL
	SignInURL string `env:"SIGN_IN_URL"`

	// ClipboardDelay is how long each clipboard value stays available
	// before it is replaced.
	// Env: FILL_CLIPBOARD_DELAY
	ClipboardDelay time.Duration `env:"CLIPBOARD_DELAY"`
}

// Fill modes.
const (
	FillModeAgent     = "agent"
	FillModeClipboard = "clipboard"
)

// GetStructuredConfig loads the daemon configuration. Sources, later
// overriding earlier non-zero fields:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
