// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskFlow Authors

// Package adapter provides clients for the external services TaskFlow
// notifies: the Telegram Bot API and the GitHub Issues API.
//
// Both clients are thin resty wrappers. Non-success responses are mapped by
// mapHTTPError to the sentinel values in errors.go so that callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401). A client built without
// credentials answers every call with [ErrNotConfigured] and never touches
// the network.
package adapter

import (
	"context"

	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ChatNotifier delivers text messages to a chat.
type ChatNotifier interface {
	// SendMessage posts text to chatID.
	SendMessage(ctx context.Context, chatID, text string) error
}

// TicketTracker creates issues in an external tracker.
type TicketTracker interface {
	// CreateIssue opens a new issue and returns its tracker-assigned number.
	CreateIssue(ctx context.Context, ticket models.Ticket) (models.CreatedTicket, error)
}
