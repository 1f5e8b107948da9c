package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-autofill-vault/internal/validators"
	"github.com/MKhiriev/go-autofill-vault/models"
)

type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

func (v *CredentialValidationService) List(ctx context.Context) ([]models.CredentialRecord, error) {
	return v.inner.List(ctx)
}

func (v *CredentialValidationService) Add(ctx context.Context, credential models.PlainCredential) error {
	credential = trimCredential(credential)
	if err := v.validator.Validate(ctx, credential); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if credential.AccountLabel == "" {
		credential.AccountLabel = credential.AccountID
	}

	return v.inner.Add(ctx, credential)
}

func (v *CredentialValidationService) Update(ctx context.Context, index int, credential models.PlainCredential) error {
	credential = trimCredential(credential)
	if err := v.validator.Validate(ctx, index, validators.FieldIndex); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if err := v.validator.Validate(ctx, credential); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if credential.AccountLabel == "" {
		credential.AccountLabel = credential.AccountID
	}

	return v.inner.Update(ctx, index, credential)
}

func (v *CredentialValidationService) Delete(ctx context.Context, index int) error {
	if err := v.validator.Validate(ctx, index, validators.FieldIndex); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	return v.inner.Delete(ctx, index)
}

func (v *CredentialValidationService) Reveal(ctx context.Context, index int) (models.PlainCredential, error) {
	if err := v.validator.Validate(ctx, index, validators.FieldIndex); err != nil {
		return models.PlainCredential{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	return v.inner.Reveal(ctx, index)
}

func (v *CredentialValidationService) Wrap(inner CredentialService) CredentialService {
	v.inner = inner
	return v
}

// trimCredential strips surrounding whitespace from every field except the
// password.
func trimCredential(c models.PlainCredential) models.PlainCredential {
	c.AccountLabel = strings.TrimSpace(c.AccountLabel)
	c.AccountID = strings.TrimSpace(c.AccountID)
	c.Username = strings.TrimSpace(c.Username)
	c.ContainerID = strings.TrimSpace(c.ContainerID)
	return c
}
