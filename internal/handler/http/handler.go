package http

import (
	"github.com/feira-digital/mercado-api/internal/config"
	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
