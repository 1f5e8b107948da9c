package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/handler"
	httpHandler "github.com/MKhiriev/go-autofill-vault/internal/handler/http"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/service"
	"github.com/MKhiriev/go-autofill-vault/internal/workers"
	"github.com/MKhiriev/go-autofill-vault/models"
)

type versionOnly struct{}

func (versionOnly) GetAppVersion(context.Context) string { return "9.9.9" }
func (versionOnly) GetStatus(context.Context) models.VaultStatus {
	return models.VaultStatus{Version: "9.9.9", State: "locked"}
}

type countingWorker struct {
	runs  atomic.Int32
	stops atomic.Int32
}

func (w *countingWorker) Run(context.Context) { w.runs.Add(1) }
func (w *countingWorker) Stop()               { w.stops.Add(1) }

func newTestHTTPHandler() *httpHandler.Handler {
	return httpHandler.NewHandler(&service.Services{AppInfoService: versionOnly{}}, config.App{}, logger.Nop())
}

func newTestServer(t *testing.T, worker workers.Worker) *server {
	t.Helper()
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}
	handlers := &handler.Handlers{HTTP: newTestHTTPHandler()}

	srv, err := NewServer(handlers, workers.NewWorkers(worker), cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_RequiresHTTP(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)

	_, err = NewServer(nil, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestNewServer_RequiresAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: newTestHTTPHandler()}

	_, err := NewServer(handlers, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoListenAddress)
}

func TestServer_ServesUntilContextDone(t *testing.T) {
	worker := &countingWorker{}
	srv := newTestServer(t, worker)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx, listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/api/version")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "9.9.9", string(body))
	assert.Equal(t, int32(1), worker.runs.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, int32(1), worker.stops.Load())

	// a second shutdown is a no-op
	srv.Shutdown()
	assert.Equal(t, int32(1), worker.stops.Load())
}

func TestServer_ServeFailureStopsWorkers(t *testing.T) {
	worker := &countingWorker{}
	srv := newTestServer(t, worker)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, listener.Close())

	err = srv.run(context.Background(), listener)

	assert.Error(t, err)
	assert.Equal(t, int32(1), worker.stops.Load())
}
