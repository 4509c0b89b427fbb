// Package response renders the unified API envelope every endpoint answers
// with.
package response

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`    // HTTP status code
	Message   string     `json:"message"` // User-friendly message
	Data      any        `json:"data,omitempty"`
	Meta      *Meta      `json:"meta,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "VALIDATION_ERROR"
	Details string `json:"details"` // Detailed error description
}

// Meta carries pagination information on list responses.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// NewMeta derives the pagination block from one result page.
func NewMeta(page, pageSize int, totalCount int64) *Meta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}

	return &Meta{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success:   true,
		Code:      statusCode,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// Paginated successful list response; the totals are mirrored into the
// X-Total-Count / X-Page-Count headers for clients that only read headers.
func Paginated(c echo.Context, data any, meta *Meta, message string) error {
	if message == "" {
		message = "Success"
	}

	c.Response().Header().Set("X-Total-Count", strconv.FormatInt(meta.TotalCount, 10))
	c.Response().Header().Set("X-Page-Count", strconv.Itoa(meta.TotalPages))

	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Code:      http.StatusOK,
		Message:   message,
		Data:      data,
		Meta:      meta,
		Timestamp: time.Now().UTC(),
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Timestamp: time.Now().UTC(),
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// ServiceUnavailable 503 error
func ServiceUnavailable(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusServiceUnavailable, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
