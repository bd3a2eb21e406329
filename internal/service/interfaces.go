// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskFlow Authors

package service

import (
	"context"

	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers account registration, credential verification, session
// tokens and chat linking.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	LinkChat(ctx context.Context, userID int64, chatLinkID string) error
}

// TaskService is the owner-scoped task API. Every method takes the
// authenticated user's ID; tasks of other users are reported as not found.
type TaskService interface {
	ListTasks(ctx context.Context, userID int64, status models.TaskStatus) ([]models.Task, error)
	SearchTasks(ctx context.Context, userID int64, query string) ([]models.Task, error)
	CreateTask(ctx context.Context, userID int64, request models.CreateTaskRequest) (models.Task, error)
	UpdateTaskStatus(ctx context.Context, userID, taskID int64, request models.UpdateStatusRequest) (models.StatusChange, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// NotificationService is the best-effort relay to the chat and the issue
// tracker. Its methods never return errors: failures are logged.
type NotificationService interface {
	// NotifyChat sends text to chatLinkID. Empty chatLinkID is a no-op.
	NotifyChat(ctx context.Context, chatLinkID string, text string)

	// MirrorTicket creates an issue and returns its number, or nil on any failure.
	MirrorTicket(ctx context.Context, ticket models.Ticket) *int64
}

// WebhookService reacts to chat platform updates.
type WebhookService interface {
	// HandleUpdate processes update and returns the status to acknowledge it
	// with ("ok" or "ignored"). It never fails.
	HandleUpdate(ctx context.Context, update *models.TelegramUpdate) string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
