// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-autofill-vault/internal/adapter"
	"github.com/MKhiriev/go-autofill-vault/internal/clock"
	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/crypto"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/store"
)

type Services struct {
	Custodian         KeyCustodian
	Cipher            CipherService
	Gateway           VaultGateway
	Autofill          AutofillOrchestrator
	CredentialService CredentialService
	AppInfoService    AppInfoService
	AutoLockJob       AutoLockJob
}

// NewServices wires the vault core: custodian → cipher → gateway, with the
// autofill orchestrator decrypting through the gateway it serves.
func NewServices(
	storages *store.Storages,
	surfaces *adapter.Surfaces,
	cfg config.StructuredConfig,
	clk clock.Clock,
	logger *logger.Logger,
) (*Services, error) {
	custodian := NewKeyCustodian(surfaces.Prompt, clk, cfg.Vault.KeyWaitTimeout, logger)
	cipher := NewCipherService(custodian, logger)

	gateway := newVaultGateway(custodian, cipher, storages.Salts, crypto.NewKeyDeriver(cfg.Vault.KDFIterations), logger)
	autofill := NewAutofillOrchestrator(gateway, surfaces.Locator, surfaces.Fill, logger)
	gateway.autofill = autofill

	appInfo, err := NewAppInfoService(cfg.App, custodian, logger)
	if err != nil {
		return nil, err
	}

	credentials := NewCredentialValidationService().
		Wrap(NewCredentialService(storages.Credentials, cipher, logger))

	return &Services{
		Custodian:         custodian,
		Cipher:            cipher,
		Gateway:           gateway,
		Autofill:          autofill,
		CredentialService: credentials,
		AppInfoService:    appInfo,
		AutoLockJob:       NewAutoLockJob(custodian, clk, cfg.Vault.AutoLockAfter, cfg.Vault.AutoLockInterval, logger),
	}, nil
}
