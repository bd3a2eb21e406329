// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskFlow Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/store"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

// taskNotificationService mirrors created tasks to the issue tracker and
// reports status changes to the owner's chat. Relay failures never fail the
// wrapped operation.
type taskNotificationService struct {
	inner TaskService

	notifications  NotificationService
	taskRepository store.TaskRepository
	userRepository store.UserRepository
}

func NewTaskNotificationService(notifications NotificationService, taskRepository store.TaskRepository, userRepository store.UserRepository) TaskServiceWrapper {
	return &taskNotificationService{
		notifications:  notifications,
		taskRepository: taskRepository,
		userRepository: userRepository,
	}
}

func (n *taskNotificationService) ListTasks(ctx context.Context, userID int64, status models.TaskStatus) ([]models.Task, error) {
	return n.inner.ListTasks(ctx, userID, status)
}

func (n *taskNotificationService) SearchTasks(ctx context.Context, userID int64, query string) ([]models.Task, error) {
	return n.inner.SearchTasks(ctx, userID, query)
}

// CreateTask creates the task, then mirrors it as a ticket. The ticket number
// is stored on the task when both the mirror and the update succeed.
func (n *taskNotificationService) CreateTask(ctx context.Context, userID int64, request models.CreateTaskRequest) (models.Task, error) {
	task, err := n.inner.CreateTask(ctx, userID, request)
	if err != nil {
		return models.Task{}, err
	}

	ticketID := n.notifications.MirrorTicket(ctx, ticketFromTask(task))
	if ticketID == nil {
		return task, nil
	}

	if err = n.taskRepository.SetExternalTicket(ctx, userID, task.ID, *ticketID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("task_id", task.ID).
			Int64("ticket_id", *ticketID).
			Msg("saving external ticket id failed")
		return task, nil
	}

	task.ExternalTicketID = ticketID
	return task, nil
}

// UpdateTaskStatus notifies the owner's chat after every successful update,
// including one that keeps the status unchanged.
func (n *taskNotificationService) UpdateTaskStatus(ctx context.Context, userID, taskID int64, request models.UpdateStatusRequest) (models.StatusChange, error) {
	change, err := n.inner.UpdateTaskStatus(ctx, userID, taskID, request)
	if err != nil {
		return models.StatusChange{}, err
	}

	owner, err := n.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("loading task owner for notification failed")
		return change, nil
	}
	if owner.HasChatLink() {
		n.notifications.NotifyChat(ctx, *owner.ChatLinkID, statusChangeMessage(change))
	}

	return change, nil
}

func (n *taskNotificationService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return n.inner.DeleteTask(ctx, userID, taskID)
}

func (n *taskNotificationService) Wrap(wrapped TaskService) TaskService {
	n.inner = wrapped
	return n
}

func ticketFromTask(task models.Task) models.Ticket {
	dueDate := "None"
	if task.DueDate != nil {
		dueDate = task.DueDate.String()
	}

	return models.Ticket{
		Title: "Task: " + task.Title,
		Body: fmt.Sprintf("Description: %s\nDue Date: %s\nCreated via TaskFlow at %s",
			task.Description, dueDate, task.CreatedAt.Format(time.RFC3339)),
	}
}

func statusChangeMessage(change models.StatusChange) string {
	return fmt.Sprintf("Task updated!\n\n%s\nStatus: %s → %s",
		change.Task.Title, change.PreviousStatus, change.Task.Status)
}
