package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/utils"
	"github.com/MKhiriev/go-autofill-vault/models"
)

const (
	messagePath     = "/api/vault/message"
	waitPath        = "/api/vault/wait"
	statusPath      = "/api/vault/status"
	credentialsPath = "/api/credentials"
)

// awaitUnlockGrace is added to a wait's own timeout to bound its request.
const awaitUnlockGrace = 10 * time.Second

type vaultHTTPClient struct {
	client *utils.HTTPClient
	// waitClient carries no client-wide timeout. AwaitUnlock bounds each
	// long-poll by the wait it asks for instead.
	waitClient *utils.HTTPClient
	tokens     *tokenSource
	logger     *logger.Logger
}

// NewVaultHTTPClient constructs the resty-based [VaultClient]. When
// appCfg.TokenSignKey is set, every request carries a bearer token minted
// for appCfg.Caller.
func NewVaultHTTPClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (VaultClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	v := &vaultHTTPClient{
		client:     utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		waitClient: utils.NewHTTPClient(baseURL, 0),
		logger:     log,
	}

	if appCfg.TokenSignKey != "" {
		v.tokens = &tokenSource{
			issuer:   appCfg.TokenIssuer,
			caller:   appCfg.Caller,
			duration: appCfg.TokenDuration,
			signKey:  appCfg.TokenSignKey,
		}
		authorize := func(_ *resty.Client, r *resty.Request) error {
			token, err := v.tokens.Token()
			if err != nil {
				return fmt.Errorf("mint caller token: %w", err)
			}
			r.SetAuthToken(token)
			return nil
		}
		v.client.OnBeforeRequest(authorize)
		v.waitClient.OnBeforeRequest(authorize)
	}

	return v, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// send posts one gateway message and decodes the tagged response.
func (v *vaultHTTPClient) send(ctx context.Context, req models.Request) (models.Response, error) {
	var out models.Response

	resp, err := v.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(messagePath)
	if err != nil {
		return models.Response{}, fmt.Errorf("%s request: %w", req.Action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Response{}, err
	}

	return out, nil
}

func (v *vaultHTTPClient) Unlock(ctx context.Context, password string) error {
	resp, err := v.send(ctx, models.Request{Action: models.ActionSetMasterPassword, Password: password})
	if err != nil {
		return err
	}
	return responseError(resp)
}

func (v *vaultHTTPClient) HasKey(ctx context.Context) (bool, error) {
	resp, err := v.send(ctx, models.Request{Action: models.ActionHasKey})
	if err != nil {
		return false, err
	}
	if resp.HasKey == nil {
		return false, fmt.Errorf("%w: malformed hasKey response", ErrRequestFailed)
	}
	return *resp.HasKey, nil
}

func (v *vaultHTTPClient) Status(ctx context.Context) (models.VaultStatus, error) {
	var out models.VaultStatus

	resp, err := v.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(statusPath)
	if err != nil {
		return models.VaultStatus{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultStatus{}, err
	}
	return out, nil
}

func (v *vaultHTTPClient) Lock(ctx context.Context) error {
	resp, err := v.send(ctx, models.Request{Action: models.ActionLock})
	if err != nil {
		return err
	}
	return responseError(resp)
}

func (v *vaultHTTPClient) Encrypt(ctx context.Context, payload any) (models.EncryptedBlob, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("encode payload: %w", err)
	}

	resp, err := v.send(ctx, models.Request{Action: models.ActionEncrypt, Data: data})
	if err != nil {
		return models.EncryptedBlob{}, err
	}
	if err := responseError(resp); err != nil {
		return models.EncryptedBlob{}, err
	}
	if resp.EncryptedData == nil {
		return models.EncryptedBlob{}, fmt.Errorf("%w: missing encryptedData", ErrRequestFailed)
	}
	return *resp.EncryptedData, nil
}

func (v *vaultHTTPClient) Decrypt(ctx context.Context, value models.SealedValue) (any, error) {
	resp, err := v.send(ctx, models.Request{Action: models.ActionDecrypt, EncryptedData: value})
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return resp.DecryptedData, nil
}

func (v *vaultHTTPClient) Autofill(ctx context.Context, record models.CredentialRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	resp, err := v.send(ctx, models.Request{Action: models.ActionAutofill, Data: data})
	if err != nil {
		return err
	}
	return responseError(resp)
}

func (v *vaultHTTPClient) AwaitUnlock(ctx context.Context, timeout time.Duration) (bool, error) {
	var out models.UnlockWaitResult

	ctx, cancel := context.WithTimeout(ctx, timeout+awaitUnlockGrace)
	defer cancel()

	resp, err := v.waitClient.R().
		SetContext(ctx).
		SetQueryParam("timeout", timeout.String()).
		SetResult(&out).
		Get(waitPath)
	if err != nil {
		return false, fmt.Errorf("await unlock request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}
	return out.Unlocked, nil
}

func (v *vaultHTTPClient) ListCredentials(ctx context.Context) ([]models.CredentialRecord, error) {
	var out []models.CredentialRecord

	resp, err := v.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("list credentials request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return out, nil
}

func (v *vaultHTTPClient) AddCredential(ctx context.Context, credential models.PlainCredential) error {
	resp, err := v.client.R().
		SetContext(ctx).
		SetBody(credential).
		Post(credentialsPath)
	if err != nil {
		return fmt.Errorf("add credential request: %w", err)
	}
	return mapHTTPError(resp)
}

func (v *vaultHTTPClient) UpdateCredential(ctx context.Context, index int, credential models.PlainCredential) error {
	resp, err := v.client.R().
		SetContext(ctx).
		SetBody(credential).
		Put(credentialPath(index))
	if err != nil {
		return fmt.Errorf("update credential request: %w", err)
	}
	return mapHTTPError(resp)
}

func (v *vaultHTTPClient) DeleteCredential(ctx context.Context, index int) error {
	resp, err := v.client.R().
		SetContext(ctx).
		Delete(credentialPath(index))
	if err != nil {
		return fmt.Errorf("delete credential request: %w", err)
	}
	return mapHTTPError(resp)
}

func (v *vaultHTTPClient) RevealCredential(ctx context.Context, index int) (models.PlainCredential, error) {
	var out models.PlainCredential

	resp, err := v.client.R().
		SetContext(ctx).
		SetResult(&out).
		Post(credentialPath(index) + "/reveal")
	if err != nil {
		return models.PlainCredential{}, fmt.Errorf("reveal credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlainCredential{}, err
	}
	return out, nil
}

func credentialPath(index int) string {
	return credentialsPath + "/" + strconv.Itoa(index)
}

// tokenSource mints caller tokens and reuses one until shortly before it
// expires.
type tokenSource struct {
	issuer   string
	caller   string
	duration time.Duration
	signKey  string

	mu      sync.Mutex
	token   string
	expires time.Time
}

func (s *tokenSource) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Until(s.expires) > s.duration/10 {
		return s.token, nil
	}

	token, err := utils.GenerateJWTToken(s.issuer, s.caller, s.duration, s.signKey)
	if err != nil {
		return "", err
	}
	s.token = token.SignedString
	s.expires = time.Now().Add(s.duration)
	return s.token, nil
}
