package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_DefaultsAreValid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultKDFIterations, cfg.Vault.KDFIterations)
	assert.Equal(t, 60*time.Second, cfg.Vault.KeyWaitTimeout)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, FillModeClipboard, cfg.Fill.Mode)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Vault:   Vault{KDFIterations: 250_000},
		Storage: Storage{DB: DB{DSN: "/tmp/other.db"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 250_000, cfg.Vault.KDFIterations)
	assert.Equal(t, "/tmp/other.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultKeyWaitTimeout, cfg.Vault.KeyWaitTimeout, "zero fields keep earlier values")
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Vault: Vault{KDFIterations: 1000}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidVaultConfigs)
}

func TestWithJSON_PathFromEarlierSource(t *testing.T) {
	p := writeTempJSONConfig(t, `{"vault": {"key_wait_timeout": "30s"}}`)

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Vault.KeyWaitTimeout)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", "/env/vault.db")
	t.Setenv("VAULT_KEY_WAIT_TIMEOUT", "45s")

	cfg, err := GetStructuredConfig([]string{"-d", "/flag/vault.db"})
	require.NoError(t, err)

	assert.Equal(t, "/flag/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, cfg.Vault.KeyWaitTimeout)
}

func TestGetClientConfig(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, DefaultCaller, cfg.App.Caller)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"defaults", func(*StructuredConfig) {}, nil},
		{"empty dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"request timeout shorter than wait", func(c *StructuredConfig) { c.Server.RequestTimeout = 30 * time.Second }, ErrInvalidServerConfigs},
		{"unknown fill mode", func(c *StructuredConfig) { c.Fill.Mode = "carrier-pigeon" }, ErrInvalidFillConfigs},
		{"agent without address", func(c *StructuredConfig) {
			c.Fill.Mode = FillModeAgent
			c.Fill.AgentAddress = ""
		}, ErrInvalidFillConfigs},
		{"sign-in url without placeholder", func(c *StructuredConfig) { c.Fill.SignInURL = "https://example.com" }, ErrInvalidFillConfigs},
		{"sign key without issuer", func(c *StructuredConfig) {
			c.App.TokenSignKey = "k"
			c.App.TokenIssuer = ""
		}, ErrInvalidAppConfigs},
		{"auto-lock without interval", func(c *StructuredConfig) { c.Vault.AutoLockInterval = 0 }, ErrInvalidVaultConfigs},
		{"auto-lock disabled without interval", func(c *StructuredConfig) {
			c.Vault.AutoLockAfter = 0
			c.Vault.AutoLockInterval = 0
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
