package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/service"
	"github.com/MKhiriev/go-autofill-vault/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

// fakeGateway implements service.VaultGateway. Handle and AwaitUnlock are
// programmable; the remaining methods are unused by the transport.
type fakeGateway struct {
	handle      func(ctx context.Context, req models.Request) models.Response
	awaitUnlock func(ctx context.Context, timeout time.Duration) bool
}

func (f *fakeGateway) Handle(ctx context.Context, req models.Request) models.Response {
	return f.handle(ctx, req)
}

func (f *fakeGateway) Unlock(context.Context, string) models.Response {
	return models.SuccessResponse()
}
func (f *fakeGateway) IsUnlocked(context.Context) bool              { return false }
func (f *fakeGateway) Encrypt(context.Context, any) models.Response { return models.SuccessResponse() }
func (f *fakeGateway) Decrypt(context.Context, models.SealedValue) models.Response {
	return models.SuccessResponse()
}
func (f *fakeGateway) Autofill(context.Context, models.CredentialRecord) models.Response {
	return models.SuccessResponse()
}
func (f *fakeGateway) Lock(context.Context) models.Response { return models.SuccessResponse() }

func (f *fakeGateway) AwaitUnlock(ctx context.Context, timeout time.Duration) bool {
	return f.awaitUnlock(ctx, timeout)
}

// fakeCredentials implements service.CredentialService with function fields.
type fakeCredentials struct {
	list   func(ctx context.Context) ([]models.CredentialRecord, error)
	add    func(ctx context.Context, c models.PlainCredential) error
	update func(ctx context.Context, index int, c models.PlainCredential) error
	delete func(ctx context.Context, index int) error
	reveal func(ctx context.Context, index int) (models.PlainCredential, error)
}

func (f *fakeCredentials) List(ctx context.Context) ([]models.CredentialRecord, error) {
	return f.list(ctx)
}

func (f *fakeCredentials) Add(ctx context.Context, c models.PlainCredential) error {
	return f.add(ctx, c)
}

func (f *fakeCredentials) Update(ctx context.Context, index int, c models.PlainCredential) error {
	return f.update(ctx, index, c)
}

func (f *fakeCredentials) Delete(ctx context.Context, index int) error {
	return f.delete(ctx, index)
}

func (f *fakeCredentials) Reveal(ctx context.Context, index int) (models.PlainCredential, error) {
	return f.reveal(ctx, index)
}

// fakeAppInfo implements service.AppInfoService.
type fakeAppInfo struct {
	version string
	state   string
}

func (f *fakeAppInfo) GetAppVersion(context.Context) string { return f.version }

func (f *fakeAppInfo) GetStatus(context.Context) models.VaultStatus {
	return models.VaultStatus{Version: f.version, State: f.state}
}

func newTestHandler(services *service.Services) *Handler {
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfo{version: "test-version", state: "locked"}
	}
	return NewHandler(services, config.App{}, logger.Nop())
}
