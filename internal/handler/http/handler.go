package http

import (
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/service"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/utils"
)

type Handler struct {
	services *service.Services

	traceIDs       *utils.UUIDGenerator
	allowedOrigins []string
	webhookSecret  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		traceIDs:       utils.NewUUIDGenerator(),
		allowedOrigins: cfg.Server.AllowedOrigins,
		webhookSecret:  cfg.Adapter.Telegram.WebhookSecret,
		logger:         logger,
	}
}
