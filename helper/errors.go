package helper

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation_error"
	KindDuplicate  Kind = "duplicate_error"
	KindNotFound   Kind = "not_found"
	KindAuth       Kind = "auth_error"
	KindConflict   Kind = "conflict_error"
	KindInternal   Kind = "internal_error"
)

// Messages shared by several handlers.
const (
	ErrInvalidRequest     = "Invalid request body"
	ErrServer             = "Server Error"
	ErrInvalidCredentials = "Invalid email or password"
	ErrUnauthorized       = "Not authorized"
)

// AppError is the error type every service returns for expected failures.
// Anything else reaching a handler is treated as an internal fault.
type AppError struct {
	Kind    Kind
	Message string
	Field   string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func Validationf(format string, args ...any) *AppError {
	return Validation(fmt.Sprintf(format, args...))
}

// Duplicate names the unique field that collided.
func Duplicate(field string) *AppError {
	return &AppError{Kind: KindDuplicate, Field: field, Message: field + " already exists"}
}

// DuplicateMessage is Duplicate with a caller-chosen message.
func DuplicateMessage(field, message string) *AppError {
	return &AppError{Kind: KindDuplicate, Field: field, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// Auth never says which half of the credentials was wrong.
func Auth() *AppError {
	return &AppError{Kind: KindAuth, Message: ErrInvalidCredentials}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: ErrServer, Err: err}
}

// KindOf classifies err; unknown errors are internal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation, KindDuplicate, KindAuth, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
