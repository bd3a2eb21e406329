package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
	"github.com/go-playground/validator/v10"
)

const (
	// tagTaskStatus is the struct tag rule accepting only [models.TaskStatuses].
	tagTaskStatus = "task_status"

	// tagMaxBytes bounds the UTF-8 byte length of a string. The built-in
	// max rule counts runes.
	tagMaxBytes = "max_bytes"
)

// fieldErrors maps "<StructField>.<tag>" of a failed rule to the error
// reported to the client.
var fieldErrors = map[string]error{
	"Username.required":  ErrEmptyUsername,
	"Username.max":       ErrUsernameTooLong,
	"Password.required":  ErrEmptyPassword,
	"Password.max_bytes": ErrPasswordTooLong,
	"Title.required":     ErrEmptyTitle,
	"Title.max":          ErrTitleTooLong,
	"Description.max":    ErrDescriptionTooLong,
	"DueDate.datetime":   ErrInvalidDueDate,
	"Status.required":    ErrInvalidStatus,
	"Status.task_status": ErrInvalidStatus,
}

// TaskValidator checks request payloads against their `validate` struct tags
// using go-playground/validator.
type TaskValidator struct {
	validate *validator.Validate
}

// NewTaskValidator returns a Validator for [models.Credentials],
// [models.CreateTaskRequest] and [models.UpdateStatusRequest].
func NewTaskValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation(tagTaskStatus, isTaskStatus)
	_ = v.RegisterValidation(tagMaxBytes, hasMaxBytes)

	return &TaskValidator{validate: v}
}

func isTaskStatus(fl validator.FieldLevel) bool {
	status, ok := fl.Field().Interface().(models.TaskStatus)
	return ok && status.IsValid()
}

func hasMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil || fl.Field().Kind() != reflect.String {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Validate checks obj. When fields are given, only those struct fields
// are checked. The first failed rule is returned as a package sentinel.
func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.Credentials, *models.Credentials,
		models.CreateTaskRequest, *models.CreateTaskRequest,
		models.UpdateStatusRequest, *models.UpdateStatusRequest:
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		return translate(v.validate.StructCtx(ctx, obj))
	}

	t := reflect.Indirect(reflect.ValueOf(obj)).Type()
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return translate(v.validate.StructPartialCtx(ctx, obj, fields...))
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	if mapped, ok := fieldErrors[fe.StructField()+"."+fe.Tag()]; ok {
		return mapped
	}

	return fmt.Errorf("%w: %s failed on %s", ErrInvalidField, fe.Field(), fe.Tag())
}
