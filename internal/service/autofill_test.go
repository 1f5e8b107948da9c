package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-autofill-vault/internal/app"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/mock"
	"github.com/MKhiriev/go-autofill-vault/models"
)

var (
	sealedUser = models.NewSealedValue(models.EncryptedBlob{IV: models.Bytes{1}, Data: models.Bytes{1}})
	sealedPass = models.NewSealedValue(models.EncryptedBlob{IV: models.Bytes{2}, Data: models.Bytes{2}})
	signInDest = models.Destination{AccountID: "123456789012", URL: "https://123456789012.signin.example.com/console"}
)

// plainDecrypter maps the fixture blobs back to their plaintext.
func plainDecrypter() decrypterFunc {
	return func(_ context.Context, value models.SealedValue) models.Response {
		blob, ok := value.Blob()
		switch {
		case !ok:
			return models.Response{Status: models.StatusSuccess, DecryptedData: ""}
		case blob.IV[0] == 1:
			return models.Response{Status: models.StatusSuccess, DecryptedData: "alice"}
		default:
			return models.Response{Status: models.StatusSuccess, DecryptedData: "s3cret"}
		}
	}
}

func TestAutofillOrchestrator_Fill(t *testing.T) {
	record := models.CredentialRecord{
		AccountLabel: "prod",
		AccountID:    "123456789012",
		Username:     sealedUser,
		Password:     sealedPass,
	}

	tests := []struct {
		name      string
		record    models.CredentialRecord
		setup     func(locator *mock.MockLocator, surface *mock.MockFillSurface)
		wantErr   error
		errSubstr string
	}{
		{
			name:   "agent alive",
			record: record,
			setup: func(locator *mock.MockLocator, surface *mock.MockFillSurface) {
				locator.EXPECT().Locate(gomock.Any(), "123456789012", "").Return(signInDest, nil)
				surface.EXPECT().Ping(gomock.Any(), signInDest).Return(true)
				surface.EXPECT().Present(gomock.Any(), signInDest, models.FillData{
					AccountID: "123456789012",
					Username:  "alice",
					Password:  "s3cret",
				}).Return(nil)
			},
		},
		{
			name:   "agent injected when not alive",
			record: record,
			setup: func(locator *mock.MockLocator, surface *mock.MockFillSurface) {
				locator.EXPECT().Locate(gomock.Any(), gomock.Any(), gomock.Any()).Return(signInDest, nil)
				gomock.InOrder(
					surface.EXPECT().Ping(gomock.Any(), signInDest).Return(false),
					surface.EXPECT().Inject(gomock.Any(), signInDest).Return(nil),
					surface.EXPECT().Present(gomock.Any(), signInDest, gomock.Any()).Return(nil),
				)
			},
		},
		{
			name:   "record without password",
			record: models.CredentialRecord{AccountID: "123456789012", Username: sealedUser},
			setup: func(locator *mock.MockLocator, surface *mock.MockFillSurface) {
				locator.EXPECT().Locate(gomock.Any(), gomock.Any(), gomock.Any()).Return(signInDest, nil)
				surface.EXPECT().Ping(gomock.Any(), gomock.Any()).Return(true)
				surface.EXPECT().Present(gomock.Any(), signInDest, models.FillData{
					AccountID: "123456789012",
					Username:  "alice",
				}).Return(nil)
			},
		},
		{
			name:   "container forwarded to locator",
			record: models.CredentialRecord{AccountID: "123456789012", Username: sealedUser, ContainerID: "work"},
			setup: func(locator *mock.MockLocator, surface *mock.MockFillSurface) {
				locator.EXPECT().Locate(gomock.Any(), "123456789012", "work").Return(signInDest, nil)
				surface.EXPECT().Ping(gomock.Any(), gomock.Any()).Return(true)
				surface.EXPECT().Present(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "locator failure",
			record: record,
			setup: func(locator *mock.MockLocator, _ *mock.MockFillSurface) {
				locator.EXPECT().Locate(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Destination{}, errors.New("bad id"))
			},
			wantErr:   ErrPresentation,
			errSubstr: app.MsgUnableToOpenTab,
		},
		{
			name:   "inject failure",
			record: record,
			setup: func(locator *mock.MockLocator, surface *mock.MockFillSurface) {
				locator.EXPECT().Locate(gomock.Any(), gomock.Any(), gomock.Any()).Return(signInDest, nil)
				surface.EXPECT().Ping(gomock.Any(), gomock.Any()).Return(false)
				surface.EXPECT().Inject(gomock.Any(), gomock.Any()).Return(errors.New("no tab"))
			},
			wantErr:   ErrPresentation,
			errSubstr: app.MsgUnableToInject,
		},
		{
			name:   "present failure",
			record: record,
			setup: func(locator *mock.MockLocator, surface *mock.MockFillSurface) {
				locator.EXPECT().Locate(gomock.Any(), gomock.Any(), gomock.Any()).Return(signInDest, nil)
				surface.EXPECT().Ping(gomock.Any(), gomock.Any()).Return(true)
				surface.EXPECT().Present(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("fields not found"))
			},
			wantErr:   ErrPresentation,
			errSubstr: app.MsgFailedToSendAutofill,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			locator := mock.NewMockLocator(ctrl)
			surface := mock.NewMockFillSurface(ctrl)
			tt.setup(locator, surface)

			o := NewAutofillOrchestrator(plainDecrypter(), locator, surface, logger.Nop())
			err := o.Fill(context.Background(), tt.record)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestAutofillOrchestrator_DecryptFailures(t *testing.T) {
	record := models.CredentialRecord{AccountID: "123456789012", Username: sealedUser, Password: sealedPass}

	t.Run("vault locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vault := decrypterFunc(func(context.Context, models.SealedValue) models.Response {
			return models.FailureResponse(app.MsgMasterPasswordNotProvided)
		})

		// No locator or surface calls are expected.
		o := NewAutofillOrchestrator(vault, mock.NewMockLocator(ctrl), mock.NewMockFillSurface(ctrl), logger.Nop())
		err := o.Fill(context.Background(), record)

		assert.ErrorIs(t, err, ErrKeyTimeout)
	})

	t.Run("password fails to decrypt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		calls := 0
		vault := decrypterFunc(func(context.Context, models.SealedValue) models.Response {
			calls++
			if calls == 2 {
				return models.FailureResponse(app.MsgInvalidEncryptedData)
			}
			return models.Response{Status: models.StatusSuccess, DecryptedData: "alice"}
		})

		o := NewAutofillOrchestrator(vault, mock.NewMockLocator(ctrl), mock.NewMockFillSurface(ctrl), logger.Nop())
		err := o.Fill(context.Background(), record)

		require.ErrorIs(t, err, ErrDecryption)
		assert.Contains(t, err.Error(), "password")
		assert.Contains(t, err.Error(), app.MsgInvalidEncryptedData)
	})
}

func TestAsText(t *testing.T) {
	assert.Equal(t, "", asText(nil))
	assert.Equal(t, "alice", asText("alice"))
	assert.Equal(t, "42", asText(float64(42)))
	assert.Equal(t, `{"a":1}`, asText(map[string]any{"a": 1}))
}
