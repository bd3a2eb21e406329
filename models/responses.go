package models

// Status values returned by the webhook and health endpoints.
const (
	WebhookStatusOK      = "ok"
	WebhookStatusIgnored = "ignored"
	HealthStatusOK       = "OK"
)

// MessageResponse is a human-readable acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by the webhook and health endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// LoginResponse carries a freshly issued session token.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}
