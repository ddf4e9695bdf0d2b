package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors
type ErrorCode string

const (
	// Validation errors (caller mistakes, rejected before any storage work)
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField   ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat   ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidInterval ErrorCode = "INVALID_INTERVAL"
	ErrCodeInvalidRateBand ErrorCode = "INVALID_RATE_BAND"
	ErrCodeDuplicateRoom   ErrorCode = "DUPLICATE_ROOM"

	// Not found errors
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeTenantNotFound ErrorCode = "TENANT_NOT_FOUND"
	ErrCodeRoomNotFound   ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeHallNotFound   ErrorCode = "HALL_NOT_FOUND"
	ErrCodeUserNotFound   ErrorCode = "USER_NOT_FOUND"

	// Conflict errors (date overlap with an existing blocking booking)
	ErrCodeConflict ErrorCode = "CONFLICT"

	// Storage errors (transaction aborted by the store; batch fully rolled back)
	ErrCodeStorage ErrorCode = "STORAGE_ERROR"

	// Notification errors (post-commit side effects; logged, never surfaced)
	ErrCodeNotification ErrorCode = "NOTIFICATION_ERROR"

	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
)

// AppError carries a code alongside the message so controllers can map errors
// to HTTP statuses without string matching.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

func NewNotFoundError(code ErrorCode, message string) *AppError {
	return NewAppError(code, message, nil)
}

// NewConflictError builds a conflict error; detail must name the conflicting
// resources (room numbers / hall names) so the caller can present a precise retry.
func NewConflictError(detail string) *AppError {
	return NewAppError(ErrCodeConflict, detail, nil)
}

func NewStorageError(err error) *AppError {
	return NewAppError(ErrCodeStorage, "storage operation failed", err)
}

// GetAppError extracts an AppError from err, unwrapping if needed.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsAppError checks whether err is an AppError
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

func hasCode(err error, code ErrorCode) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == code
	}
	return false
}

func IsConflict(err error) bool {
	return hasCode(err, ErrCodeConflict)
}

func IsValidation(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		switch appErr.Code {
		case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat,
			ErrCodeInvalidInterval, ErrCodeInvalidRateBand, ErrCodeDuplicateRoom:
			return true
		}
	}
	return false
}

func IsNotFound(err error) bool {
	if appErr := GetAppError(err); appErr != nil {
		switch appErr.Code {
		case ErrCodeNotFound, ErrCodeTenantNotFound, ErrCodeRoomNotFound,
			ErrCodeHallNotFound, ErrCodeUserNotFound:
			return true
		}
	}
	return false
}
