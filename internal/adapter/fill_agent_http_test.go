package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/utils"
	"github.com/MKhiriev/go-autofill-vault/models"
)

var testDest = models.Destination{
	AccountID:   "123456789012",
	URL:         "https://123456789012.signin.aws.amazon.com/console",
	ContainerID: "work",
}

func newTestAgent(t *testing.T, handler http.HandlerFunc) FillSurface {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	surface, err := NewAgentFillSurface(srv.URL, time.Second, logger.Nop())
	require.NoError(t, err)
	return surface
}

func TestAgentFillSurface_Ping(t *testing.T) {
	surface := newTestAgent(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		assert.Equal(t, testDest.URL, r.URL.Query().Get("url"))
		assert.Equal(t, "work", r.URL.Query().Get("containerId"))
		_, _ = utils.WriteJSON(w, models.AgentStatus{Status: models.AgentStatusAlive}, http.StatusOK)
	})

	assert.True(t, surface.Ping(context.Background(), testDest))
}

func TestAgentFillSurface_PingNotAlive(t *testing.T) {
	surface := newTestAgent(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	assert.False(t, surface.Ping(context.Background(), testDest))
}

func TestAgentFillSurface_Inject(t *testing.T) {
	surface := newTestAgent(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inject", r.URL.Path)
		var dest models.Destination
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dest))
		assert.Equal(t, testDest, dest)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, surface.Inject(context.Background(), testDest))
}

func TestAgentFillSurface_Present(t *testing.T) {
	surface := newTestAgent(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/autofill", r.URL.Path)
		var req models.FillRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Data.Username)
		assert.Equal(t, "123456789012", req.Data.AccountID)
		_, _ = utils.WriteJSON(w, models.SuccessResponse(), http.StatusOK)
	})

	err := surface.Present(context.Background(), testDest, models.FillData{
		AccountID: "123456789012", Username: "alice", Password: "pw",
	})
	assert.NoError(t, err)
}

func TestAgentFillSurface_PresentRejected(t *testing.T) {
	surface := newTestAgent(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.FailureResponse("fields not found"), http.StatusOK)
	})

	err := surface.Present(context.Background(), testDest, models.FillData{})
	assert.ErrorIs(t, err, ErrAgentRejected)
	assert.Contains(t, err.Error(), "fields not found")
}
