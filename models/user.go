package models

import "time"

// User represents an account that owns tasks.
// PasswordHash is never serialized; Password only travels inbound.
type User struct {
	// UserID is the server-assigned identifier, also used as the token subject.
	UserID int64 `json:"user_id"`

	// Username is unique across all users.
	Username string `json:"username"`

	// Password is the plaintext password received on register/login.
	// It is cleared after hashing and never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// ChatLinkID is the Telegram chat the user linked via the bot webhook.
	// Nil until the first successful link.
	ChatLinkID *string `json:"-"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"-"`
}

// HasChatLink reports whether the user has a linked chat channel.
func (u User) HasChatLink() bool {
	return u.ChatLinkID != nil && *u.ChatLinkID != ""
}
