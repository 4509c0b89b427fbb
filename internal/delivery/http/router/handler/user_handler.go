package handler

import (
	"net/http"

	"newsbite/internal/delivery/http/middleware"
	"newsbite/internal/delivery/http/response"
	"newsbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile and preference handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetProfile returns the authenticated user's account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Missing authenticated user")
	}

	output, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile retrieved successfully")
}

// UpdateProfile applies the provided profile fields to the authenticated
// user's account.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Missing authenticated user")
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile updated successfully")
}

// GetPreferences returns the authenticated user's digest preferences.
func (h *UserHandler) GetPreferences(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Missing authenticated user")
	}

	output, err := h.uc.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Preferences retrieved successfully")
}

// UpdatePreferences applies the provided preference fields for the
// authenticated user.
func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_ERROR", "Missing authenticated user")
	}

	var input usecase.UpdatePreferencesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid preference input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdatePreferences(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Preferences updated successfully")
}
