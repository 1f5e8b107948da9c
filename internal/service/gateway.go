// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-autofill-vault/internal/app"
	"github.com/MKhiriev/go-autofill-vault/internal/crypto"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/store"
	"github.com/MKhiriev/go-autofill-vault/models"
)

type vaultGateway struct {
	custodian KeyCustodian
	cipher    CipherService
	salts     store.SaltStore
	deriver   crypto.KeyDeriver
	autofill  AutofillOrchestrator

	logger *logger.Logger
}

func newVaultGateway(
	custodian KeyCustodian,
	cipher CipherService,
	salts store.SaltStore,
	deriver crypto.KeyDeriver,
	log *logger.Logger,
) *vaultGateway {
	return &vaultGateway{
		custodian: custodian,
		cipher:    cipher,
		salts:     salts,
		deriver:   deriver,
		logger:    log,
	}
}

// Handle dispatches req by action. A panic in any operation is turned into
// an internal error response.
func (g *vaultGateway) Handle(ctx context.Context, req models.Request) (resp models.Response) {
	log := g.logger.ForContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("action", string(req.Action)).Interface("panic", r).Msg("vault operation panicked")
			resp = models.FailureResponse(app.MsgInternalServerError)
		}
	}()

	switch req.Action {
	case models.ActionSetMasterPassword:
		resp = g.Unlock(ctx, req.Password)
	case models.ActionHasKey:
		resp = models.KeyPresenceResponse(g.IsUnlocked(ctx))
	case models.ActionEncrypt:
		if len(req.Data) == 0 {
			resp = models.FailureResponse(app.MsgInvalidDataProvided)
			break
		}
		resp = g.Encrypt(ctx, req.Data)
	case models.ActionDecrypt:
		resp = g.Decrypt(ctx, req.EncryptedData)
	case models.ActionAutofill:
		var record models.CredentialRecord
		if err := json.Unmarshal(req.Data, &record); err != nil {
			resp = models.FailureResponse(app.MsgInvalidDataProvided)
			break
		}
		resp = g.Autofill(ctx, record)
	case models.ActionLock:
		resp = g.Lock(ctx)
	default:
		resp = models.FailureResponse(app.MsgUnknownAction)
	}

	event := log.Info()
	if !resp.IsSuccess() {
		event = log.Warn().Str("message", resp.Message)
	}
	event.Str("action", string(req.Action)).Str("status", string(resp.Status)).Msg("vault request handled")

	return resp
}

func (g *vaultGateway) Unlock(ctx context.Context, password string) models.Response {
	salt, err := g.salts.GetOrCreateSalt(ctx)
	if err != nil {
		return models.FailureResponse(err.Error())
	}

	key, err := g.deriver.Derive(password, salt)
	if err != nil {
		return models.FailureResponse(err.Error())
	}

	g.custodian.SetKey(ctx, key)
	return models.SuccessResponse()
}

func (g *vaultGateway) IsUnlocked(_ context.Context) bool {
	return g.custodian.HasKey()
}

func (g *vaultGateway) Encrypt(ctx context.Context, payload any) models.Response {
	blob, err := g.cipher.Encrypt(ctx, payload)
	if err != nil {
		return failure(err)
	}
	return models.Response{Status: models.StatusSuccess, EncryptedData: &blob}
}

func (g *vaultGateway) Decrypt(ctx context.Context, value models.SealedValue) models.Response {
	plain, err := g.cipher.Decrypt(ctx, value)
	if err != nil {
		return failure(err)
	}
	return models.DecryptedResponse(plain)
}

func (g *vaultGateway) Autofill(ctx context.Context, record models.CredentialRecord) models.Response {
	if g.autofill == nil {
		return models.FailureResponse(app.MsgInternalServerError)
	}
	if err := g.autofill.Fill(ctx, record); err != nil {
		return failure(err)
	}
	return models.SuccessResponse()
}

func (g *vaultGateway) Lock(ctx context.Context) models.Response {
	g.custodian.Lock(ctx)
	return models.SuccessResponse()
}

func (g *vaultGateway) AwaitUnlock(ctx context.Context, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return g.custodian.AwaitUnlocked(ctx)
}

// failure converts err into a tagged failure. ErrKeyTimeout always becomes
// the exact "Master password not provided" message callers retry on.
func failure(err error) models.Response {
	switch {
	case errors.Is(err, ErrKeyTimeout):
		return models.FailureResponse(app.MsgMasterPasswordNotProvided)
	case errors.Is(err, crypto.ErrInvalidBlob):
		return models.FailureResponse(app.MsgInvalidEncryptedData)
	default:
		return models.FailureResponse(fmt.Sprint(err))
	}
}
