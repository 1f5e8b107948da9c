package config

import (
	"fmt"
	"time"
)

// ClientApp holds the caller-token settings the client needs.
type ClientApp struct {
	// LogLevel is the minimum log level of the client log file.
	LogLevel string
	// Caller is the subject of minted caller tokens.
	Caller string
	// TokenSignKey is the shared signing key. Empty disables tokens.
	TokenSignKey string
	// TokenIssuer is the issuer the daemon expects.
	TokenIssuer string
	// TokenDuration is the lifetime of a minted token.
	TokenDuration time.Duration
}

// ClientAdapter holds the daemon endpoint used by the client.
type ClientAdapter struct {
	// HTTPAddress is the daemon's host:port or base URL.
	HTTPAddress string
	// RequestTimeout bounds one request. Long enough to cover an unlock wait.
	RequestTimeout time.Duration
}

// ClientConfig is the vaultctl view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds the client configuration from defaults,
// environment variables, and the optional JSON file. Command-line arguments
// belong to vaultctl subcommands and are not read here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel:      cfg.App.LogLevel,
			Caller:        cfg.App.Caller,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
