package service

import (
	"context"
	"errors"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/adapter"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

type notificationService struct {
	chat    adapter.ChatNotifier
	tracker adapter.TicketTracker
}

func NewNotificationService(chat adapter.ChatNotifier, tracker adapter.TicketTracker) NotificationService {
	return &notificationService{
		chat:    chat,
		tracker: tracker,
	}
}

func (n *notificationService) NotifyChat(ctx context.Context, chatLinkID string, text string) {
	log := logger.FromContext(ctx)

	if chatLinkID == "" {
		log.Debug().Msg("no chat linked, notification skipped")
		return
	}

	err := n.chat.SendMessage(ctx, chatLinkID, text)
	switch {
	case errors.Is(err, adapter.ErrNotConfigured):
		log.Warn().Str("chat_id", chatLinkID).Msg("chat relay is not configured, notification skipped")
	case err != nil:
		log.Err(err).Str("chat_id", chatLinkID).Msg("chat notification failed")
	default:
		log.Info().Str("chat_id", chatLinkID).Msg("chat notification sent")
	}
}

func (n *notificationService) MirrorTicket(ctx context.Context, ticket models.Ticket) *int64 {
	log := logger.FromContext(ctx)

	created, err := n.tracker.CreateIssue(ctx, ticket)
	if errors.Is(err, adapter.ErrNotConfigured) {
		log.Warn().Str("title", ticket.Title).Msg("ticket tracker is not configured, mirroring skipped")
		return nil
	}
	if err != nil {
		log.Err(err).Str("title", ticket.Title).Msg("ticket mirroring failed")
		return nil
	}

	log.Info().Int64("ticket_id", created.Number).Msg("ticket created")
	return &created.Number
}
