package handler

import (
	"net/http"

	"newsbite/internal/delivery/http/middleware"
	"newsbite/internal/delivery/http/response"
	"newsbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmailHandler holds dependencies for email tracking and digest handlers.
// Every route behind it is admin only; the role check lives in the usecase.
type EmailHandler struct {
	uc usecase.EmailUsecase
}

// NewEmailHandler is the constructor for EmailHandler, injected by Fx.
func NewEmailHandler(uc usecase.EmailUsecase) *EmailHandler {
	return &EmailHandler{uc: uc}
}

// ListLogs returns one page of email send records.
func (h *EmailHandler) ListLogs(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Missing authenticated user")
	}

	var input usecase.ListEmailLogsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid log listing query")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListLogs(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	meta := response.NewMeta(output.Page, output.PageSize, output.Total)

	return response.Paginated(c, output.Logs, meta, "Email logs retrieved successfully")
}

// ListDigests returns one page of assembled digests.
func (h *EmailHandler) ListDigests(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Missing authenticated user")
	}

	var input usecase.ListDigestsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid digest listing query")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListDigests(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	meta := response.NewMeta(output.Page, output.PageSize, output.Total)

	return response.Paginated(c, output.Digests, meta, "Digests retrieved successfully")
}

// BuildDigest assembles a digest for a date and cadence and queues its
// recipient emails.
func (h *EmailHandler) BuildDigest(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Missing authenticated user")
	}

	var input usecase.BuildDigestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid digest input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.BuildDigest(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Digest built successfully")
}
