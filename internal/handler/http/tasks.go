package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/service"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/utils"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/validators"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
	"github.com/go-chi/chi/v5"
)

const messageTaskDeleted = "Task deleted"

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	status := models.TaskStatus(r.URL.Query().Get("status"))

	tasks, err := h.services.TaskService.ListTasks(r.Context(), userID, status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeTasks(w, tasks)
}

func (h *Handler) searchTasks(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	tasks, err := h.services.TaskService.SearchTasks(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeTasks(w, tasks)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	// a body that is not an object with a string title is a title error
	var request models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w: %w", service.ErrInvalidInput, validators.ErrEmptyTitle, err))
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("task_id", task.ID).Int64("user_id", userID).Msg("task created")
	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) updateTaskStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.UpdateStatusRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w: %w", service.ErrInvalidInput, validators.ErrInvalidStatus, err))
		return
	}

	change, err := h.services.TaskService.UpdateTaskStatus(ctx, userID, taskID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, change.Task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TaskService.DeleteTask(ctx, userID, taskID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: messageTaskDeleted}, http.StatusOK)
}

func taskIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || taskID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTaskID, raw)
	}
	return taskID, nil
}

// writeTasks answers with a JSON array, never null.
func writeTasks(w http.ResponseWriter, tasks []models.Task) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	utils.WriteJSON(w, tasks, http.StatusOK)
}
