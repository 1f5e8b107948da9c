// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged daemon configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Vault.KDFIterations < DefaultKDFIterations {
		return fmt.Errorf("%w: kdf iterations %d below %d",
			ErrInvalidVaultConfigs, cfg.Vault.KDFIterations, DefaultKDFIterations)
	}
	if cfg.Vault.KeyWaitTimeout <= 0 {
		return fmt.Errorf("%w: key wait timeout must be positive", ErrInvalidVaultConfigs)
	}
	if cfg.Vault.AutoLockAfter < 0 || (cfg.Vault.AutoLockAfter > 0 && cfg.Vault.AutoLockInterval <= 0) {
		return fmt.Errorf("%w: invalid auto-lock settings", ErrInvalidVaultConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= cfg.Vault.KeyWaitTimeout {
		return fmt.Errorf("%w: request timeout must exceed key wait timeout", ErrInvalidServerConfigs)
	}

	switch cfg.Fill.Mode {
	case FillModeClipboard:
	case FillModeAgent:
		if cfg.Fill.AgentAddress == "" || cfg.Fill.AgentTimeout <= 0 {
			return ErrInvalidFillConfigs
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidFillConfigs, cfg.Fill.Mode)
	}
	if strings.Count(cfg.Fill.SignInURL, "%s") != 1 {
		return fmt.Errorf("%w: sign-in URL needs exactly one %%s", ErrInvalidFillConfigs)
	}

	if cfg.App.TokenSignKey != "" && (cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0) {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.TokenSignKey != "" && (cfg.App.Caller == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0) {
		return ErrInvalidAppConfigs
	}

	return nil
}
