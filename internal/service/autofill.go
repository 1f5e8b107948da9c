package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-autofill-vault/internal/adapter"
	"github.com/MKhiriev/go-autofill-vault/internal/app"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/models"
)

// decrypter is the part of VaultGateway the orchestrator needs.
type decrypter interface {
	Decrypt(ctx context.Context, value models.SealedValue) models.Response
}

type autofillOrchestrator struct {
	vault   decrypter
	locator adapter.Locator
	surface adapter.FillSurface

	logger *logger.Logger
}

func NewAutofillOrchestrator(vault decrypter, locator adapter.Locator, surface adapter.FillSurface, log *logger.Logger) AutofillOrchestrator {
	return &autofillOrchestrator{
		vault:   vault,
		locator: locator,
		surface: surface,
		logger:  log,
	}
}

// Fill decrypts record and hands it to the fill surface. A locked vault is
// reported as ErrKeyTimeout and is not retried here.
func (o *autofillOrchestrator) Fill(ctx context.Context, record models.CredentialRecord) error {
	username, err := o.decryptField(ctx, "username", record.Username)
	if err != nil {
		return err
	}

	var password string
	if record.HasPassword() {
		if password, err = o.decryptField(ctx, "password", record.Password); err != nil {
			return err
		}
	}

	dest, err := o.locator.Locate(ctx, record.AccountID, record.ContainerID)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPresentation, app.MsgUnableToOpenTab, err)
	}

	if !o.surface.Ping(ctx, dest) {
		o.logger.Debug().Str("url", dest.URL).Msg("fill agent not alive, injecting")
		if err := o.surface.Inject(ctx, dest); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPresentation, app.MsgUnableToInject, err)
		}
	}

	err = o.surface.Present(ctx, dest, models.FillData{
		AccountID: record.AccountID,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPresentation, app.MsgFailedToSendAutofill, err)
	}

	o.logger.Info().Str("account", record.AccountLabel).Str("url", dest.URL).Msg("credentials presented")
	return nil
}

func (o *autofillOrchestrator) decryptField(ctx context.Context, field string, value models.SealedValue) (string, error) {
	resp := o.vault.Decrypt(ctx, value)
	if !resp.IsSuccess() {
		if resp.Message == app.MsgMasterPasswordNotProvided {
			return "", fmt.Errorf("decrypt %s: %w", field, ErrKeyTimeout)
		}
		return "", fmt.Errorf("decrypt %s: %w: %s", field, ErrDecryption, resp.Message)
	}
	return asText(resp.DecryptedData), nil
}

// asText renders a decrypted value as form input text.
func asText(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(raw)
	}
}
