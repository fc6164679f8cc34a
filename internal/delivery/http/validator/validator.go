// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "habitar/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the generic
// validation AppError so the error middleware renders them uniformly.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
