package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-autofill-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldAccountLabel = "account_label"
	FieldAccountID    = "account_id"
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldContainerID  = "container_id"
	FieldIndex        = "index"
)

// MaxFieldLength bounds every credential text field.
const MaxFieldLength = 1024

type CredentialValidator struct {
}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate accepts models.PlainCredential (or a pointer to one) and int
// record indexes.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PlainCredential:
		return v.validateCredential(ctx, value, fields...)
	case *models.PlainCredential:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredential(ctx, *value, fields...)
	case int:
		return v.validateIndex(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, c models.PlainCredential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountLabel, FieldAccountID, FieldUsername, FieldPassword, FieldContainerID}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountLabel:
			if err := checkLength(f, c.AccountLabel); err != nil {
				return err
			}
		case FieldAccountID:
			if c.AccountID == "" {
				return ErrEmptyAccountID
			}
			if strings.ContainsAny(c.AccountID, " \t\r\n/\\") {
				return ErrInvalidAccountID
			}
			if err := checkLength(f, c.AccountID); err != nil {
				return err
			}
		case FieldUsername:
			if c.Username == "" {
				return ErrEmptyUsername
			}
			if err := checkLength(f, c.Username); err != nil {
				return err
			}
		case FieldPassword:
			// may be empty: the record then stores the empty value
			if err := checkLength(f, c.Password); err != nil {
				return err
			}
		case FieldContainerID:
			if err := checkLength(f, c.ContainerID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateIndex(index int, fields ...string) error {
	for _, f := range fields {
		if f != FieldIndex {
			return ErrUnknownField
		}
	}
	if index < 0 {
		return ErrInvalidIndex
	}
	return nil
}

func checkLength(field, value string) error {
	if len(value) > MaxFieldLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, field)
	}
	return nil
}
