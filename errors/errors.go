package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Inference errors
	ErrCodeInferenceUnavailable ErrorCode = "INFERENCE_UNAVAILABLE"

	// User errors
	ErrCodeUserNotFound  ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists    ErrorCode = "USER_EXISTS"
	ErrCodeInvalidUserID ErrorCode = "INVALID_USER_ID"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

// FieldError is a single per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the application error carried from services to controllers.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
	Fields  []FieldError
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

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError builds a VALIDATION_ERROR carrying field messages.
func NewValidationError(message string, fields []FieldError) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Fields:  fields,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// ErrInferenceUnavailable is the single failure signal of the inference
	// client. Transport, status, quota, deadline and decode failures all wrap it.
	ErrInferenceUnavailable = errors.New("inference unavailable")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
)

// Unavailable wraps cause so that errors.Is(err, ErrInferenceUnavailable) holds.
func Unavailable(cause error) error {
	if cause == nil {
		return ErrInferenceUnavailable
	}
	if errors.Is(cause, ErrInferenceUnavailable) {
		return cause
	}
	return fmt.Errorf("%w: %w", ErrInferenceUnavailable, cause)
}
