package config

import "time"

// Default values applied before any other source.
const (
	DefaultKDFIterations    = 100_000
	DefaultKeyWaitTimeout   = 60 * time.Second
	DefaultAutoLockAfter    = 15 * time.Minute
	DefaultAutoLockInterval = 30 * time.Second
	DefaultDSN              = "vault.db"
	DefaultHTTPAddress      = "127.0.0.1:7788"
	DefaultRequestTimeout   = 90 * time.Second
	DefaultTokenIssuer      = "vaultd"
	DefaultTokenDuration    = time.Hour
	DefaultCaller           = "vaultctl"
	DefaultAgentAddress     = "http://127.0.0.1:7789"
	DefaultAgentTimeout     = 5 * time.Second
	DefaultSignInURL        = "https://%s.signin.aws.amazon.com/console"
	DefaultClipboardDelay   = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:      "info",
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Caller:        DefaultCaller,
		},
		Vault: Vault{
			KDFIterations:    DefaultKDFIterations,
			KeyWaitTimeout:   DefaultKeyWaitTimeout,
			AutoLockAfter:    DefaultAutoLockAfter,
			AutoLockInterval: DefaultAutoLockInterval,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Fill: Fill{
			Mode:           FillModeClipboard,
			AgentAddress:   DefaultAgentAddress,
			AgentTimeout:   DefaultAgentTimeout,
			SignInURL:      DefaultSignInURL,
			ClipboardDelay: DefaultClipboardDelay,
		},
	}
}
