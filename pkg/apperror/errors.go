package apperror

import (
	"errors"
	"net/http"
)

// Kind is the closed set of application error categories. Every error
// the services return carries exactly one kind, and the kind is mapped
// to an HTTP status in one place (StatusCode).
type Kind string

const (
	KindInsufficientStock Kind = "INSUFFICIENT_STOCK"
	KindNotFound          Kind = "NOT_FOUND"
	KindUnauthorized      Kind = "UNAUTHORIZED"
	KindForbidden         Kind = "FORBIDDEN"
	KindConflict          Kind = "CONFLICT"
	KindValidationFailed  Kind = "VALIDATION_FAILED"
	KindBadRequest        Kind = "BAD_REQUEST"
	KindInternal          Kind = "INTERNAL"
)

// StatusCode maps an error kind to its HTTP status.
func (k Kind) StatusCode() int {
	switch k {
	case KindInsufficientStock:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindValidationFailed:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AppError represents an application error with a kind and message.
type AppError struct {
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Kind: KindNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Kind: KindUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Kind: KindForbidden, Message: "Forbidden"}
	ErrInvalidCredentials = &AppError{Kind: KindUnauthorized, Message: "Invalid email or password"}
	ErrInvalidToken       = &AppError{Kind: KindUnauthorized, Message: "Invalid token"}
)

// New creates a new application error
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// NewInsufficientStock creates an insufficient stock error
func NewInsufficientStock(message string) *AppError {
	return &AppError{Kind: KindInsufficientStock, Message: message}
}

// NewNotFound creates a not found error for a resource
func NewNotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

// NewConflict creates a conflict error with a custom message
func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NewBadRequest creates a bad request error with a custom message
func NewBadRequest(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message}
}

// NewValidation creates a validation error with field details
func NewValidation(fieldErrors []FieldError) *AppError {
	return &AppError{
		Kind:    KindValidationFailed,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// Get converts an error to AppError, wrapping unknown errors as internal.
func Get(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Kind: KindInternal, Message: err.Error()}
}
