package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername      = errors.New("username is required")
	ErrUsernameTooLong    = errors.New("username must be at most 80 characters")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrEmptyTitle         = errors.New("title is required and must be a non-empty string")
	ErrTitleTooLong       = errors.New("title must be at most 100 characters")
	ErrDescriptionTooLong = errors.New("description must be at most 500 characters")
	ErrInvalidDueDate     = errors.New("due_date must be a date in YYYY-MM-DD format")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidField       = errors.New("invalid field value")
)
