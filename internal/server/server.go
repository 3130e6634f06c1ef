package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-message-keeper/internal/config"
	"github.com/MKhiriev/go-message-keeper/internal/handler"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/workers"
)

const defaultShutdownTimeout = 15 * time.Second

type server struct {
	httpServer      *httpServer
	workers         *workers.Workers
	shutdownTimeout time.Duration

	shutdownOnce sync.Once
	shutdownErr  error

	logger *logger.Logger
}

// NewServer prepares the HTTP server over handlers. background is started
// with the server and stopped after the HTTP server has drained; it may be
// nil.
func NewServer(handlers *handler.Handlers, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	if err != nil {
		return nil, err
	}

	if background == nil {
		background = workers.NewWorkers()
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      httpSrv,
		workers:         background,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	l, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}
	return s.serve(ctx, l)
}

// serve runs until ctx is done or the HTTP server fails, then shuts down.
func (s *server) serve(ctx context.Context, l net.Listener) error {
	s.workers.Start(ctx)

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", l.Addr().String()).Bool("tls", s.httpServer.tls).Msg("Launching HTTP server")
		serveErr <- s.httpServer.Serve(l)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-serveErr:
		if runErr != nil {
			runErr = fmt.Errorf("HTTP server stopped: %w", runErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

// Shutdown stops accepting requests, waits for in-flight ones and then
// drains the background workers. Only the first call has an effect.
func (s *server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		httpErr := s.httpServer.Shutdown(ctx)
		workersErr := s.workers.Stop(ctx)
		s.shutdownErr = errors.Join(httpErr, workersErr)
	})
	return s.shutdownErr
}
