package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/utils"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

const (
	telegramSendMessagePath = "/bot{token}/sendMessage"

	redactedToken = "<redacted>"
)

type telegramClient struct {
	client   *utils.HTTPClient
	botToken string
	logger   *logger.Logger
}

// NewTelegramClient constructs a [ChatNotifier] for the Telegram Bot API.
// An empty bot token yields a client that always returns [ErrNotConfigured].
func NewTelegramClient(cfg config.Telegram, timeout time.Duration, logger *logger.Logger) ChatNotifier {
	if cfg.BotToken == "" {
		logger.Warn().Str("func", "NewTelegramClient").Msg("telegram bot token is not set, chat notifications are disabled")
	}

	return &telegramClient{
		client:   utils.NewHTTPClient(cfg.APIURL, timeout),
		botToken: cfg.BotToken,
		logger:   logger,
	}
}

// SendMessage implements [ChatNotifier] via POST /bot<token>/sendMessage.
// Only HTTP 200 counts as delivered.
func (t *telegramClient) SendMessage(ctx context.Context, chatID, text string) error {
	if t.botToken == "" {
		return ErrNotConfigured
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetPathParam("token", t.botToken).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TelegramSendMessage{ChatID: chatID, Text: text}).
		Post(telegramSendMessagePath)
	if err != nil {
		return fmt.Errorf("telegram sendMessage request: %w", redactToken(err, t.botToken))
	}

	return mapHTTPError(resp, http.StatusOK)
}

// redactedError replaces the bot token in the message of a transport error.
// The request URL embeds the token, and the message ends up in logs.
type redactedError struct {
	message string
	cause   error
}

func (e *redactedError) Error() string {
	return e.message
}

func (e *redactedError) Unwrap() error {
	return e.cause
}

func redactToken(err error, token string) error {
	if err == nil || token == "" {
		return err
	}

	message := err.Error()
	redacted := strings.ReplaceAll(message, token, redactedToken)
	redacted = strings.ReplaceAll(redacted, url.PathEscape(token), redactedToken)
	if redacted == message {
		return err
	}

	return &redactedError{message: redacted, cause: err}
}
