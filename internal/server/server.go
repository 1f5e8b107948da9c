package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-autofill-vault/internal/config"
	"github.com/MKhiriev/go-autofill-vault/internal/handler"
	"github.com/MKhiriev/go-autofill-vault/internal/logger"
	"github.com/MKhiriev/go-autofill-vault/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	address    string

	shutdownOnce sync.Once
	logger       *logger.Logger
}

func NewServer(handlers *handler.Handlers, bg *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    bg,
		address:    cfg.HTTPAddress,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		s.logger.Error().Err(err).Str("address", s.address).Msg("error listening")
		return
	}

	if err = s.run(ctx, listener); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.httpServer.Shutdown()
		s.workers.Stop()
	})
}

// run serves on listener and starts the workers, then blocks until ctx is
// done or serving fails. Either way everything is shut down before it
// returns.
func (s *server) run(ctx context.Context, listener net.Listener) error {
	s.workers.Run(ctx)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("serve http: %w", err)
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
