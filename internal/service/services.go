package service

import (
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/adapter"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/store"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

type Services struct {
	AuthService         AuthService
	TaskService         TaskService
	NotificationService NotificationService
	WebhookService      WebhookService
	AppInfoService      AppInfoService
}

// NewServices wires the services over storages and the outbound clients.
// TaskService is decorated as validation → notification → core.
func NewServices(storages *store.Storages, chat adapter.ChatNotifier, tracker adapter.TicketTracker, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	authService := NewAuthService(storages.UserRepository, cfg.App)
	notificationService := NewNotificationService(chat, tracker)

	taskService := NewTaskService(storages.TaskRepository)
	taskService = NewTaskNotificationService(notificationService, storages.TaskRepository, storages.UserRepository).Wrap(taskService)
	taskService = NewTaskValidationService().Wrap(taskService)

	return &Services{
		AuthService:         authService,
		TaskService:         taskService,
		NotificationService: notificationService,
		WebhookService:      NewWebhookService(authService, notificationService),
		AppInfoService:      NewAppInfoService(buildInfo),
	}
}
