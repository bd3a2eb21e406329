package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/store"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

type taskService struct {
	taskRepository store.TaskRepository
}

func NewTaskService(taskRepository store.TaskRepository) TaskService {
	return &taskService{
		taskRepository: taskRepository,
	}
}

func (t *taskService) ListTasks(ctx context.Context, userID int64, status models.TaskStatus) ([]models.Task, error) {
	return t.taskRepository.ListTasks(ctx, models.TaskFilter{UserID: userID, Status: status})
}

func (t *taskService) SearchTasks(ctx context.Context, userID int64, query string) ([]models.Task, error) {
	return t.taskRepository.ListTasks(ctx, models.TaskFilter{UserID: userID, Query: query})
}

// CreateTask stores a new task in [models.StatusCreated]. The title is
// trimmed and an empty due date means none.
func (t *taskService) CreateTask(ctx context.Context, userID int64, request models.CreateTaskRequest) (models.Task, error) {
	task := models.Task{
		Title:       strings.TrimSpace(request.Title),
		Description: request.Description,
		Status:      models.StatusCreated,
		UserID:      userID,
	}
	if task.Title == "" {
		return models.Task{}, fmt.Errorf("%w: empty title", ErrInvalidInput)
	}

	if request.DueDate != nil && *request.DueDate != "" {
		dueDate, err := models.ParseDate(*request.DueDate)
		if err != nil {
			return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		task.DueDate = &dueDate
	}

	return t.taskRepository.CreateTask(ctx, task)
}

func (t *taskService) UpdateTaskStatus(ctx context.Context, userID, taskID int64, request models.UpdateStatusRequest) (models.StatusChange, error) {
	return t.taskRepository.UpdateTaskStatus(ctx, userID, taskID, request.Status)
}

func (t *taskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return t.taskRepository.DeleteTask(ctx, userID, taskID)
}
