// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "medishare/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for Echo.
type echoValidator struct {
	validate *playground.Validate
}

// New creates an Echo-compatible validator.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Struct tag violations surface as a
// validation AppError so the error middleware maps them to 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
