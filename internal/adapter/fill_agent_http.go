package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/utils"
	"github.com/MKhiriev/go-autofill-vault/models"
)

type agentFillSurface struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewAgentFillSurface returns a [FillSurface] talking to a local fill agent
// (for example, a browser extension's native-messaging host) over HTTP:
//
//	GET  /ping      liveness, answers {"status":"alive"}
//	POST /inject    start the agent at a destination
//	POST /autofill  fill the form, answers a tagged response
func NewAgentFillSurface(address string, timeout time.Duration, log *logger.Logger) (FillSurface, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid fill agent address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, timeout)

	return &agentFillSurface{client: client, logger: log}, nil
}

func (a *agentFillSurface) Ping(ctx context.Context, dest models.Destination) bool {
	var status models.AgentStatus

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("url", dest.URL).
		SetQueryParam("containerId", dest.ContainerID).
		SetResult(&status).
		Get("/ping")
	if err != nil || mapHTTPError(resp) != nil {
		a.logger.Debug().Err(err).Str("url", dest.URL).Msg("fill agent did not answer ping")
		return false
	}

	return status.Status == models.AgentStatusAlive
}

func (a *agentFillSurface) Inject(ctx context.Context, dest models.Destination) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(dest).
		Post("/inject")
	if err != nil {
		return fmt.Errorf("inject request: %w", err)
	}
	return mapHTTPError(resp)
}

func (a *agentFillSurface) Present(ctx context.Context, dest models.Destination, data models.FillData) error {
	var out models.Response

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(models.FillRequest{Destination: dest, Data: data}).
		SetResult(&out).
		Post("/autofill")
	if err != nil {
		return fmt.Errorf("autofill request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out.Status == models.StatusError {
		return fmt.Errorf("%w: %s", ErrAgentRejected, out.Message)
	}
	return nil
}
