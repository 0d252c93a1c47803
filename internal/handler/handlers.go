package handler

import (
	"github.com/feira-digital/mercado-api/internal/config"
	"github.com/feira-digital/mercado-api/internal/handler/http"
	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}, nil
}
