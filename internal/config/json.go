package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// [Duration] fields that accept "30s"-style strings.
type StructuredJSONConfig struct {
	App struct {
		LogLevel      string   `json:"log_level"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Caller        string   `json:"caller"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Vault struct {
		KDFIterations    int      `json:"kdf_iterations"`
		KeyWaitTimeout   Duration `json:"key_wait_timeout"`
		AutoLockAfter    Duration `json:"auto_lock_after"`
		AutoLockInterval Duration `json:"auto_lock_interval"`
	} `json:"vault,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Prompt struct {
		Command string `json:"command"`
	} `json:"prompt,omitempty"`

	Fill struct {
		Mode           string   `json:"mode"`
		AgentAddress   string   `json:"agent_address"`
		AgentTimeout   Duration `json:"agent_timeout"`
		SignInURL      string   `json:"sign_in_url"`
		ClipboardDelay Duration `json:"clipboard_delay"`
	} `json:"fill,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:      j.App.LogLevel,
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			Caller:        j.App.Caller,
			Version:       j.App.Version,
		},
		Vault: Vault{
			KDFIterations:    j.Vault.KDFIterations,
			KeyWaitTimeout:   time.Duration(j.Vault.KeyWaitTimeout),
			AutoLockAfter:    time.Duration(j.Vault.AutoLockAfter),
			AutoLockInterval: time.Duration(j.Vault.AutoLockInterval),
		},
		Storage: Storage{DB: DB{DSN: j.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Prompt: Prompt{Command: j.Prompt.Command},
		Fill: Fill{
			Mode:           j.Fill.Mode,
			AgentAddress:   j.Fill.AgentAddress,
			AgentTimeout:   time.Duration(j.Fill.AgentTimeout),
			SignInURL:      j.Fill.SignInURL,
			ClipboardDelay: time.Duration(j.Fill.ClipboardDelay),
		},
	}, nil
}

// Duration is a time.Duration that unmarshals from JSON strings like "1h"
// as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
