// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_LEVEL":      "debug",
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_CALLER":         "popup",
		"APP_VERSION":        "1.2.3",

		"VAULT_KDF_ITERATIONS":     "200000",
		"VAULT_KEY_WAIT_TIMEOUT":   "60s",
		"VAULT_AUTO_LOCK_AFTER":    "10m",
		"VAULT_AUTO_LOCK_INTERVAL": "15s",

		"STORAGE_DB_DSN": "/var/lib/vault.db",

		"SERVER_ADDRESS":         "127.0.0.1:7788",
		"SERVER_REQUEST_TIMEOUT": "90s",

		"ADAPTER_ADDRESS":         "127.0.0.1:7788",
		"ADAPTER_REQUEST_TIMEOUT": "2m",

		"PROMPT_COMMAND": "vaultctl unlock",

		"FILL_MODE":            "agent",
		"FILL_AGENT_ADDRESS":   "http://127.0.0.1:7789",
		"FILL_AGENT_TIMEOUT":   "3s",
		"FILL_SIGN_IN_URL":     "https://%s.example.com/login",
		"FILL_CLIPBOARD_DELAY": "20s",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "popup", cfg.App.Caller)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, 200000, cfg.Vault.KDFIterations)
	assert.Equal(t, 60*time.Second, cfg.Vault.KeyWaitTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Vault.AutoLockAfter)
	assert.Equal(t, 15*time.Second, cfg.Vault.AutoLockInterval)

	assert.Equal(t, "/var/lib/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:7788", cfg.Server.HTTPAddress)
	assert.Equal(t, 90*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "vaultctl unlock", cfg.Prompt.Command)

	assert.Equal(t, FillModeAgent, cfg.Fill.Mode)
	assert.Equal(t, "http://127.0.0.1:7789", cfg.Fill.AgentAddress)
	assert.Equal(t, 3*time.Second, cfg.Fill.AgentTimeout)
	assert.Equal(t, "https://%s.example.com/login", cfg.Fill.SignInURL)
	assert.Equal(t, 20*time.Second, cfg.Fill.ClipboardDelay)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("VAULT_KEY_WAIT_TIMEOUT", "soon")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
