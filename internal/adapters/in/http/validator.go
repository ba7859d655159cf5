package http

import (
	"mealbox/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// requestValidator adapts validator/v10 to echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body is invalid", err)
	}
	return nil
}
