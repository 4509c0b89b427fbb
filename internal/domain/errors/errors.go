package errors

import (
	"net/http"

	"newsbite/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors of the same kind, so detail-augmented copies produced by
// WithDetails still satisfy errors.Is against their predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.message == t.message
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Input validation failed",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_ERROR",
		"Incorrect email or password",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_ERROR",
		"Invalid or expired token",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_ERROR",
		"Invalid or expired refresh token",
		"",
	)

	ErrGoogleTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_ERROR",
		"Invalid Google ID token",
		"",
	)

	// Authorization-related errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"AUTHORIZATION_ERROR",
		"You do not have permission to perform this action",
		"",
	)

	// Not-found errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_ERROR",
		"User not found",
		"",
	)

	ErrArticleNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_ERROR",
		"News article not found",
		"",
	)

	ErrSummaryNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_ERROR",
		"News summary not found",
		"",
	)

	ErrTemplateNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_ERROR",
		"Email template not found",
		"",
	)

	ErrDigestNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_ERROR",
		"Email digest not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND_ERROR",
		"Resource not found",
		"",
	)

	// Conflict-related errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CONFLICT_ERROR",
		"Email address is already registered",
		"",
	)

	ErrArticleAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CONFLICT_ERROR",
		"An article with this URL already exists",
		"",
	)

	ErrTemplateAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CONFLICT_ERROR",
		"An email template with this name already exists",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT_ERROR",
		"Resource conflict",
		"",
	)

	// Rate-limit errors
	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMIT_ERROR",
		"Too many requests, please try again later",
		"",
	)

	// Database-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Database transaction failed",
		"",
	)

	// External service errors
	ErrExternalService = NewBaseError(
		http.StatusBadGateway,
		"EXTERNAL_SERVICE_ERROR",
		"External service request failed",
		"",
	)

	// General errors
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Password processing failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
