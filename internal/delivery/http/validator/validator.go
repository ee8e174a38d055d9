// Package validator adapts go-playground/validator to echo's Validator
// interface for request DTO checks.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a validator.Validate instance.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() echo.Validator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the struct tags of a bound request DTO.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
