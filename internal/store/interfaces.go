package store

import (
	"context"

	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts (the credential store).
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// Returns ErrUsernameAlreadyExists for a taken username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns ErrNoUserWasFound when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID returns ErrNoUserWasFound when nothing matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// SetChatLink overwrites the user's chat link.
	// Returns ErrNoUserWasFound for an unknown user.
	SetChatLink(ctx context.Context, userID int64, chatLinkID string) error
}

// TaskRepository persists tasks. Every method is scoped by the owner id and
// reports a task of another owner as ErrTaskNotFound.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, userID, taskID int64, status models.TaskStatus) (models.StatusChange, error)
	SetExternalTicket(ctx context.Context, userID, taskID, ticketID int64) error
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// ErrorClassificator decides whether a failed database call may succeed
// when attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
