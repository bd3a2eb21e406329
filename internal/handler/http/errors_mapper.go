package http

import (
	"errors"
	"net/http"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/service"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/store"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/utils"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/validators"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

const (
	messageUnauthorized  = "Token is missing or invalid"
	messageInternalError = "Internal server error"
	messageTaskNotFound  = "Task not found or access denied"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:   http.StatusBadRequest,
	ErrInvalidTaskID: http.StatusNotFound,

	service.ErrInvalidInput:        http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrTaskNotFound:          http.StatusNotFound,
}

// errorMessageMap holds client-facing texts. Errors missing here are shown
// by their own text for 4xx and hidden behind messageInternalError for 5xx.
var errorMessageMap = map[error]string{
	ErrInvalidJSON:   "Invalid JSON was passed",
	ErrInvalidTaskID: messageTaskNotFound,

	service.ErrMissingCredentials: "Username and password required",
	service.ErrInvalidCredentials: "Invalid credentials",
	service.ErrUnauthenticated:    messageUnauthorized,

	store.ErrUsernameAlreadyExists: "User already exists",
	store.ErrTaskNotFound:          messageTaskNotFound,

	validators.ErrEmptyTitle:    "Title is required and must be a non-empty string",
	validators.ErrInvalidStatus: "Invalid status",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if status >= http.StatusInternalServerError {
		return messageInternalError
	}
	return err.Error()
}

// writeError logs err and answers with {"error": "..."}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err, status)}, status)
}
