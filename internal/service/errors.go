package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingCredentials = errors.New("username and password required")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnauthenticated     = errors.New("token is missing, expired or invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
