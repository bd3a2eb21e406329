// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskFlow Authors

package models

// TelegramUpdate is the subset of a Telegram Bot API update the webhook reads.
type TelegramUpdate struct {
	UpdateID int64            `json:"update_id"`
	Message  *TelegramMessage `json:"message"`
}

// TelegramMessage is an incoming chat message.
type TelegramMessage struct {
	MessageID int64        `json:"message_id"`
	Chat      TelegramChat `json:"chat"`
	Text      string       `json:"text"`
}

// TelegramChat identifies the chat a message came from.
type TelegramChat struct {
	ID int64 `json:"id"`
}

// TelegramSendMessage is the body of the Bot API sendMessage method.
type TelegramSendMessage struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Ticket is an issue to be mirrored in the external tracker.
type Ticket struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CreatedTicket is the part of the GitHub "create issue" response we keep.
type CreatedTicket struct {
	Number int64 `json:"number"`
}
