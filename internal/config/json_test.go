package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := writeTempJSONConfig(t, `{
		"app": {"log_level": "debug", "token_sign_key": "k", "token_issuer": "iss", "token_duration": "2h", "caller": "popup"},
		"vault": {"kdf_iterations": 150000, "key_wait_timeout": "60s", "auto_lock_after": "20m", "auto_lock_interval": "1m"},
		"storage": {"db": {"dsn": "/data/vault.db"}},
		"server": {"http_address": "127.0.0.1:7788", "request_timeout": "90s"},
		"adapter": {"http_address": "127.0.0.1:7788", "request_timeout": "95s"},
		"prompt": {"command": "vaultctl unlock"},
		"fill": {"mode": "agent", "agent_address": "http://127.0.0.1:7789", "agent_timeout": "2s",
		         "sign_in_url": "https://%s.signin.aws.amazon.com/console", "clipboard_delay": "10s"}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "popup", cfg.App.Caller)
	assert.Equal(t, 150000, cfg.Vault.KDFIterations)
	assert.Equal(t, 20*time.Minute, cfg.Vault.AutoLockAfter)
	assert.Equal(t, "/data/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 95*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "vaultctl unlock", cfg.Prompt.Command)
	assert.Equal(t, 2*time.Second, cfg.Fill.AgentTimeout)
	assert.Equal(t, 10*time.Second, cfg.Fill.ClipboardDelay)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	assert.Error(t, err)

	p := writeTempJSONConfig(t, `{"vault": {"key_wait_timeout": "forever"}}`)
	_, err = parseJSON(p)
	assert.Error(t, err)

	p = writeTempJSONConfig(t, `not json`)
	_, err = parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	out, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(out))
}
