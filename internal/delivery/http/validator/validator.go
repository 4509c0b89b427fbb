// Package validator adapts go-playground/validator to echo's Validator
// interface so request DTOs are checked right after binding.
package validator

import (
	domainerrors "newsbite/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator bound onto the echo server.
func New() *echoValidator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks the bound request struct against its validate tags. The
// field-level report goes into the error details so clients can see which
// input was rejected.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
