package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTelegram(t *testing.T, handler http.HandlerFunc, token string) ChatNotifier {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewTelegramClient(config.Telegram{BotToken: token, APIURL: srv.URL}, time.Second, logger.Nop())
}

// ── SendMessage ──

func TestTelegram_SendMessage_Success(t *testing.T) {
	client := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bot123:ABC/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body models.TelegramSendMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "42", body.ChatID)
		assert.Equal(t, "hello", body.Text)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}, "123:ABC")

	err := client.SendMessage(context.Background(), "42", "hello")
	require.NoError(t, err)
}

func TestTelegram_SendMessage_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "too many requests", status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "accepted is not ok", status: http.StatusAccepted, wantErr: ErrUnexpectedStatus},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}, "token")

			err := client.SendMessage(context.Background(), "1", "text")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTelegram_SendMessage_NotConfigured(t *testing.T) {
	called := false
	client := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, "")

	err := client.SendMessage(context.Background(), "1", "text")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, called)
}

func TestTelegram_SendMessage_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewTelegramClient(config.Telegram{BotToken: "token", APIURL: url}, time.Second, logger.Nop())

	err := client.SendMessage(context.Background(), "1", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram sendMessage request")
}

func TestTelegram_SendMessage_TransportErrorHidesToken(t *testing.T) {
	const token = "123456:AAH-secret_part"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewTelegramClient(config.Telegram{BotToken: token, APIURL: url}, time.Second, logger.Nop())

	err := client.SendMessage(context.Background(), "1", "text")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "AAH-secret_part")
	assert.Contains(t, err.Error(), "/bot<redacted>/sendMessage")
}

func TestTelegram_SendMessage_CancelledHidesToken(t *testing.T) {
	client := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, "123456:AAH-secret_part")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.SendMessage(ctx, "1", "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, err.Error(), "AAH-secret_part")
}

func TestRedactToken(t *testing.T) {
	cause := errors.New(`Post "http://api/bot42:abc/sendMessage": dial tcp: connection refused`)

	tests := []struct {
		name  string
		err   error
		token string
		want  string
	}{
		{name: "nil", err: nil, token: "42:abc"},
		{name: "no token configured", err: cause, token: "", want: cause.Error()},
		{name: "token absent", err: errors.New("timeout"), token: "42:abc", want: "timeout"},
		{name: "token present", err: cause, token: "42:abc", want: `Post "http://api/bot<redacted>/sendMessage": dial tcp: connection refused`},
		{name: "escaped token", err: errors.New("GET /bota%2Fb/x"), token: "a/b", want: "GET /bot<redacted>/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := redactToken(tt.err, tt.token)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			assert.Equal(t, tt.want, got.Error())
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestTelegram_SendMessage_ContextCancelled(t *testing.T) {
	client := newTestTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, "token")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.SendMessage(ctx, "1", "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
