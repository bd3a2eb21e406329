package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/store"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

const (
	linkCommand = "/start"

	replyLinked      = "Your Telegram account is now linked to TaskFlow!"
	replyUnknownUser = "User not found."
	replyUsage       = "Use the command as: /start <user_id>"
)

type webhookService struct {
	auth          AuthService
	notifications NotificationService
}

func NewWebhookService(auth AuthService, notifications NotificationService) WebhookService {
	return &webhookService{
		auth:          auth,
		notifications: notifications,
	}
}

// HandleUpdate links the sender's chat on "/start <user_id>". Any other
// message is acknowledged without action.
func (w *webhookService) HandleUpdate(ctx context.Context, update *models.TelegramUpdate) string {
	if update == nil || update.Message == nil {
		return models.WebhookStatusIgnored
	}

	message := update.Message
	if !strings.HasPrefix(message.Text, linkCommand) {
		return models.WebhookStatusOK
	}

	chatID := strconv.FormatInt(message.Chat.ID, 10)

	userID, ok := parseLinkArgument(message.Text)
	if !ok {
		w.notifications.NotifyChat(ctx, chatID, replyUsage)
		return models.WebhookStatusOK
	}

	err := w.auth.LinkChat(ctx, userID, chatID)
	switch {
	case err == nil:
		logger.FromContext(ctx).Info().Int64("user_id", userID).Str("chat_id", chatID).Msg("chat linked")
		w.notifications.NotifyChat(ctx, chatID, replyLinked)
	case errors.Is(err, store.ErrNoUserWasFound):
		w.notifications.NotifyChat(ctx, chatID, replyUnknownUser)
	default:
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("chat link failed, update acknowledged")
	}

	return models.WebhookStatusOK
}

// parseLinkArgument returns the user ID of "/start <digits>". A number out
// of int64 range is reported as user 0, which never exists.
func parseLinkArgument(text string) (int64, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 || !isDigits(parts[1]) {
		return 0, false
	}

	userID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, true
	}
	return userID, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
