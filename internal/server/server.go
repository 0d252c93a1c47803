package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/feira-digital/mercado-api/internal/config"
	"github.com/feira-digital/mercado-api/internal/handler"
	"github.com/feira-digital/mercado-api/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errNoServersAreCreated
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")

	serveFailed := make(chan error, 1)
	go func() {
		serveFailed <- s.httpServer.RunServer()
	}()

	// a serve failure (e.g. the port is already taken) must not leave the
	// process hanging until a stop signal arrives
	select {
	case err := <-serveFailed:
		if err != nil {
			return fmt.Errorf("HTTP server stopped serving: %w", err)
		}
	case <-ctx.Done():
		s.Shutdown()
		if err := <-serveFailed; err != nil {
			return fmt.Errorf("HTTP server stopped serving: %w", err)
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
