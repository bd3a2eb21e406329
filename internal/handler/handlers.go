package handler

import (
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/handler/http"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg == nil || cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
