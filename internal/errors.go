package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrCodeIncorrectPassword ErrorCode = "INCORRECT_PASSWORD"
	ErrCodeEmailTaken        ErrorCode = "EMAIL_TAKEN"
	ErrCodeUsernameTaken     ErrorCode = "USERNAME_TAKEN"
	ErrCodeInvalidToken      ErrorCode = "INVALID_TOKEN"
	ErrCodeInvalidResetToken ErrorCode = "INVALID_RESET_TOKEN"
	ErrCodeNoRolesAssigned   ErrorCode = "NO_ROLES_ASSIGNED"
	ErrCodeInsufficientPerms ErrorCode = "INSUFFICIENT_PERMISSIONS"

	ErrCodeComicNotFound      ErrorCode = "COMIC_NOT_FOUND"
	ErrCodePublisherNotFound  ErrorCode = "PUBLISHER_NOT_FOUND"
	ErrCodeUniverseNotFound   ErrorCode = "UNIVERSE_NOT_FOUND"
	ErrCodeCreatorNotFound    ErrorCode = "CREATOR_NOT_FOUND"
	ErrCodeSeriesNotFound     ErrorCode = "SERIES_NOT_FOUND"
	ErrCodeEditionNotFound    ErrorCode = "EDITION_NOT_FOUND"
	ErrCodeEntryNotFound      ErrorCode = "COLLECTION_ENTRY_NOT_FOUND"
	ErrCodeRoleNotFound       ErrorCode = "ROLE_NOT_FOUND"
	ErrCodePermissionNotFound ErrorCode = "PERMISSION_NOT_FOUND"
	ErrCodeDuplicateName      ErrorCode = "DUPLICATE_NAME"
	ErrCodeDuplicateEntry     ErrorCode = "DUPLICATE_ENTRY"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrUserNotFound      = NewUnauthorizedError("user does not exist", ErrCodeUserNotFound)
	ErrIncorrectPassword = NewUnauthorizedError("incorrect password", ErrCodeIncorrectPassword)
	ErrEmailTaken        = NewConflictError("email is already registered", ErrCodeEmailTaken)
	ErrUsernameTaken     = NewConflictError("username is already taken", ErrCodeUsernameTaken)
	ErrInvalidResetToken = NewValidationError("Invalid or expired password reset token.", ErrCodeInvalidResetToken)

	ErrComicNotFound      = NewNotFoundError("comic not found", ErrCodeComicNotFound)
	ErrPublisherNotFound  = NewNotFoundError("publisher not found", ErrCodePublisherNotFound)
	ErrUniverseNotFound   = NewNotFoundError("universe not found", ErrCodeUniverseNotFound)
	ErrCreatorNotFound    = NewNotFoundError("creator not found", ErrCodeCreatorNotFound)
	ErrSeriesNotFound     = NewNotFoundError("series not found", ErrCodeSeriesNotFound)
	ErrEditionNotFound    = NewNotFoundError("edition not found", ErrCodeEditionNotFound)
	ErrEntryNotFound      = NewNotFoundError("collection entry not found", ErrCodeEntryNotFound)
	ErrRoleNotFound       = NewNotFoundError("role not found", ErrCodeRoleNotFound)
	ErrPermissionNotFound = NewNotFoundError("permission not found", ErrCodePermissionNotFound)

	ErrDuplicateEntry = NewConflictError("comic is already in your collection", ErrCodeDuplicateEntry)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
