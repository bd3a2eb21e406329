package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/mock"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/service"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/utils"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "handler-test-key"
	testIssuer  = "taskflow"
)

// testServices bundles the mocks behind a test router.
type testServices struct {
	auth    *mock.MockAuthService
	tasks   *mock.MockTaskService
	webhook *mock.MockWebhookService
	appInfo *mock.MockAppInfoService
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Server: config.Server{AllowedOrigins: []string{"*"}},
	}
}

func newTestRouter(t *testing.T, cfg *config.StructuredConfig) (*chi.Mux, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		tasks:   mock.NewMockTaskService(ctrl),
		webhook: mock.NewMockWebhookService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    m.auth,
		TaskService:    m.tasks,
		WebhookService: m.webhook,
		AppInfoService: m.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()).Init(), m
}

// expectToken makes the mocked AuthService accept "valid-token" as userID.
func expectToken(m testServices, userID int64) string {
	raw := "valid-token"
	m.auth.EXPECT().ParseToken(gomock.Any(), raw).Return(models.Token{UserID: userID}, nil).AnyTimes()
	return raw
}

func doRequest(router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, _ := json.Marshal(b)
		reader = bytes.NewBuffer(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	cfg := testConfig()
	cfg.Adapter.Telegram.WebhookSecret = "s3cret"
	log := logger.Nop()

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, []string{"*"}, h.allowedOrigins)
	assert.Equal(t, "s3cret", h.webhookSecret)
	assert.NotNil(t, h.traceIDs)
}

// ─────────────────────────────────────────────
// End-to-end scenario over the router
// ─────────────────────────────────────────────

func TestScenario_LoginCreateUpdateDelete(t *testing.T) {
	router, m := newTestRouter(t, testConfig())

	m.auth.EXPECT().Login(gomock.Any(), models.Credentials{Username: "admin", Password: "admin"}).
		Return(models.User{UserID: 1, Username: "admin"}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: 1, Username: "admin"}).
		Return(models.Token{SignedString: "valid-token", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}, nil)

	rec := doRequest(router, http.MethodPost, "/login", models.Credentials{Username: "admin", Password: "admin"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.Equal(t, int64(1), login.UserID)

	token := expectToken(m, login.UserID)
	require.Equal(t, login.Token, token)

	task := models.Task{ID: 10, Title: "Write report", Status: models.StatusCreated, UserID: 1}
	m.tasks.EXPECT().CreateTask(gomock.Any(), int64(1), models.CreateTaskRequest{Title: "Write report"}).Return(task, nil)

	rec = doRequest(router, http.MethodPost, "/tasks", map[string]string{"title": "Write report"}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.StatusCreated, created.Status)
	assert.Equal(t, int64(1), created.UserID)

	updated := task
	updated.Status = models.StatusInProgress
	m.tasks.EXPECT().UpdateTaskStatus(gomock.Any(), int64(1), int64(10), models.UpdateStatusRequest{Status: models.StatusInProgress}).
		Return(models.StatusChange{Task: updated, PreviousStatus: models.StatusCreated}, nil)

	rec = doRequest(router, http.MethodPut, "/tasks/10/status", map[string]string{"status": "InProgress"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var afterUpdate models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &afterUpdate))
	assert.Equal(t, models.StatusInProgress, afterUpdate.Status)
	assert.Equal(t, created.ID, afterUpdate.ID)
	assert.Equal(t, created.Title, afterUpdate.Title)

	m.tasks.EXPECT().DeleteTask(gomock.Any(), int64(1), int64(10)).Return(nil)
	m.tasks.EXPECT().ListTasks(gomock.Any(), int64(1), models.TaskStatus("")).Return(nil, nil)

	rec = doRequest(router, http.MethodDelete, "/tasks/10", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/tasks", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// ─────────────────────────────────────────────
// Context helpers
// ─────────────────────────────────────────────

func TestAuthenticatedHandlersReadUserIDFromContext(t *testing.T) {
	router, m := newTestRouter(t, testConfig())
	token := expectToken(m, 77)

	m.tasks.EXPECT().SearchTasks(gomock.Any(), int64(77), "x").DoAndReturn(
		func(ctx context.Context, _ int64, _ string) ([]models.Task, error) {
			userID, ok := utils.GetUserIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, int64(77), userID)
			return []models.Task{}, nil
		},
	)

	rec := doRequest(router, http.MethodGet, "/tasks/search?q=x", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
