package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/feira-digital/mercado-api/internal/config"
	"github.com/feira-digital/mercado-api/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       time.Minute,
		},
		logger: logger,
	}
}

// RunServer blocks serving requests. It returns nil once the server has been
// stopped through Shutdown; any other outcome, such as the listen address
// being already in use, is returned as an error.
func (h *httpServer) RunServer() error {
	err := h.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
