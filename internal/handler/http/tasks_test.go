package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/service"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/store"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/validators"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── GET /tasks ──

func TestListTasks_JSONShape(t *testing.T) {
	router, m := newTestRouter(t, testConfig())
	token := expectToken(m, 1)

	dueDate := models.NewDate(2026, time.December, 31)
	ticket := int64(42)
	tasks := []models.Task{
		{
			ID: 1, Title: "a", Description: "d", Status: models.StatusCreated, DueDate: &dueDate,
			UserID: 1, ExternalTicketID: &ticket, CreatedAt: time.Date(2026, time.October, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, Title: "b", Status: models.StatusCompleted,
			UserID: 1, CreatedAt: time.Date(2026, time.October, 2, 8, 0, 0, 0, time.UTC),
		},
	}
	m.tasks.EXPECT().ListTasks(gomock.Any(), int64(1), models.TaskStatus("")).Return(tasks, nil)

	rec := doRequest(router, http.MethodGet, "/tasks", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[
		{"id":1,"title":"a","description":"d","status":"Created","due_date":"2026-12-31",
		 "user_id":1,"external_ticket_id":42,"created_at":"2026-10-01T08:00:00Z"},
		{"id":2,"title":"b","description":"","status":"Completed","due_date":null,
		 "user_id":1,"external_ticket_id":null,"created_at":"2026-10-02T08:00:00Z"}
	]`, rec.Body.String())
}

func TestListTasks_StatusFilter(t *testing.T) {
	router, m := newTestRouter(t, testConfig())
	token := expectToken(m, 1)

	m.tasks.EXPECT().ListTasks(gomock.Any(), int64(1), models.StatusInProgress).Return([]models.Task{}, nil)

	rec := doRequest(router, http.MethodGet, "/tasks?status=InProgress", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListTasks_StorageError(t *testing.T) {
	router, m := newTestRouter(t, testConfig())
	token := expectToken(m, 1)

	m.tasks.EXPECT().ListTasks(gomock.Any(), int64(1), gomock.Any()).Return(nil, store.ErrScanningRows)

	rec := doRequest(router, http.MethodGet, "/tasks", nil, token)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, messageInternalError, decodeError(t, rec))
}

// ── GET /tasks/search ──

func TestSearchTasks(t *testing.T) {
	router, m := newTestRouter(t, testConfig())
	token := expectToken(m, 3)

	m.tasks.EXPECT().SearchTasks(gomock.Any(), int64(3), "Report 50%").Return([]models.Task{{ID: 9, UserID: 3}}, nil)

	rec := doRequest(router, http.MethodGet, "/tasks/search?q=Report+50%25", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].ID)
}

func TestSearchTasks_NoQuery(t *testing.T) {
	router, m := newTestRouter(t, testConfig())
	token := expectToken(m, 3)

	m.tasks.EXPECT().SearchTasks(gomock.Any(), int64(3), "").Return(nil, nil)

	rec := doRequest(router, http.MethodGet, "/tasks/search", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// ── POST /tasks ──

func TestCreateTask_WithAllFields(t *testing.T) {
	router, m := newTestRouter(t, testConfig())
	token := expectToken(m, 2)
	dueDate := "2026-11-30"

	m.tasks.EXPECT().CreateTask(gomock.Any(), int64(2), models.CreateTaskRequest{
		Title: "t", Description: "d", DueDate: &dueDate,
	}).Return(models.Task{ID: 4, Title: "t", Status: models.StatusCreated, UserID: 2}, nil)

	rec := doRequest(router, http.MethodPost, "/tasks", `{"title":"t","description":"d","due_date":"2026-11-30"}`, token)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateTask_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "empty title",
			body:       `{"title":"  "}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrEmptyTitle),
			wantStatus: http.StatusBadRequest,
			wantError:  "Title is required and must be a non-empty string",
		},
		{
			name:       "long description",
			body:       `{"title":"t"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrDescriptionTooLong),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid input: description must be at most 500 characters",
		},
		{
			name:       "title is a number",
			body:       `{"title":5}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Title is required and must be a non-empty string",
		},
		{
			name:       "no body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantError:  "Title is required and must be a non-empty string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, testConfig())
			token := expectToken(m, 2)
			if tt.serviceErr != nil {
				m.tasks.EXPECT().CreateTask(gomock.Any(), int64(2), gomock.Any()).Return(models.Task{}, tt.serviceErr)
			}

			rec := doRequest(router, http.MethodPost, "/tasks", tt.body, token)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec))
		})
	}
}

// ── PUT /tasks/{id}/status ──

func TestUpdateTaskStatus_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid status",
			path:       "/tasks/1/status",
			body:       `{"status":"Done"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrInvalidStatus),
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid status",
		},
		{
			name:       "other owner",
			path:       "/tasks/1/status",
			body:       `{"status":"Completed"}`,
			serviceErr: store.ErrTaskNotFound,
			callsSvc:   true,
			wantStatus: http.StatusNotFound,
			wantError:  messageTaskNotFound,
		},
		{
			name:       "status not a string",
			path:       "/tasks/1/status",
			body:       `{"status":1}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid status",
		},
		{
			name:       "non-numeric id",
			path:       "/tasks/abc/status",
			body:       `{"status":"Completed"}`,
			wantStatus: http.StatusNotFound,
			wantError:  messageTaskNotFound,
		},
		{
			name:       "zero id",
			path:       "/tasks/0/status",
			body:       `{"status":"Completed"}`,
			wantStatus: http.StatusNotFound,
			wantError:  messageTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, testConfig())
			token := expectToken(m, 2)
			if tt.callsSvc {
				m.tasks.EXPECT().UpdateTaskStatus(gomock.Any(), int64(2), int64(1), gomock.Any()).
					Return(models.StatusChange{}, tt.serviceErr)
			}

			rec := doRequest(router, http.MethodPut, tt.path, tt.body, token)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec))
		})
	}
}

// ── DELETE /tasks/{id} ──

func TestDeleteTask(t *testing.T) {
	router, m := newTestRouter(t, testConfig())
	token := expectToken(m, 2)

	m.tasks.EXPECT().DeleteTask(gomock.Any(), int64(2), int64(15)).Return(nil)

	rec := doRequest(router, http.MethodDelete, "/tasks/15", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Task deleted"}`, rec.Body.String())
}

func TestDeleteTask_NotFound(t *testing.T) {
	router, m := newTestRouter(t, testConfig())
	token := expectToken(m, 2)

	m.tasks.EXPECT().DeleteTask(gomock.Any(), int64(2), int64(15)).Return(store.ErrTaskNotFound)

	rec := doRequest(router, http.MethodDelete, "/tasks/15", nil, token)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, messageTaskNotFound, decodeError(t, rec))
}
