package handler

import (
	"net/http"

	"newsbite/internal/delivery/http/response"
	"newsbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and token flow handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Account registered successfully")
}

// Login handles the password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GoogleLogin handles sign-in with a Google ID token.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var input usecase.GoogleLoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid Google login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GoogleLogin(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Google sign-in successful")
}

// Refresh handles the access token refresh request.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input usecase.RefreshInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid refresh input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Refresh(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// RequestPasswordReset queues a password-reset email. The answer is 202
// whether or not the account exists, so the endpoint cannot be used to probe
// registered addresses.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var input usecase.PasswordResetRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid password reset input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "If the account exists, a password reset email has been queued")
}

// ConfirmPasswordReset verifies a reset token and stores the new password.
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var input usecase.PasswordResetConfirmInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid password reset confirmation")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ConfirmPasswordReset(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}

// RequestEmailVerification queues a verification email, answering 202
// regardless of whether the account exists.
func (h *AuthHandler) RequestEmailVerification(c echo.Context) error {
	var input usecase.EmailVerificationRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid verification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RequestEmailVerification(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "If the account exists, a verification email has been queued")
}

// ConfirmEmailVerification verifies the token and marks the address confirmed.
func (h *AuthHandler) ConfirmEmailVerification(c echo.Context) error {
	var input usecase.EmailVerificationConfirmInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_ERROR", "Invalid verification confirmation")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ConfirmEmailVerification(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email address verified successfully")
}
