package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/validators"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

// taskValidationService rejects malformed create and status-update payloads
// before they reach the wrapped TaskService.
type taskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &taskValidationService{
		validator: validators.NewTaskValidator(),
	}
}

// ListTasks passes status through unchecked: an unknown status matches no task.
func (v *taskValidationService) ListTasks(ctx context.Context, userID int64, status models.TaskStatus) ([]models.Task, error) {
	return v.inner.ListTasks(ctx, userID, status)
}

func (v *taskValidationService) SearchTasks(ctx context.Context, userID int64, query string) ([]models.Task, error) {
	return v.inner.SearchTasks(ctx, userID, query)
}

func (v *taskValidationService) CreateTask(ctx context.Context, userID int64, request models.CreateTaskRequest) (models.Task, error) {
	request.Title = strings.TrimSpace(request.Title)
	if request.DueDate != nil && *request.DueDate == "" {
		request.DueDate = nil
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("task validation failed")
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.CreateTask(ctx, userID, request)
}

func (v *taskValidationService) UpdateTaskStatus(ctx context.Context, userID, taskID int64, request models.UpdateStatusRequest) (models.StatusChange, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("task_id", taskID).
			Str("status", request.Status.String()).
			Msg("status validation failed")
		return models.StatusChange{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.UpdateTaskStatus(ctx, userID, taskID, request)
}

func (v *taskValidationService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return v.inner.DeleteTask(ctx, userID, taskID)
}

func (v *taskValidationService) Wrap(wrapped TaskService) TaskService {
	v.inner = wrapped
	return v
}
