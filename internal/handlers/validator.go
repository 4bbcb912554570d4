package handlers

import (
	"customer-service/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a validator backed by the shared validation rules
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate returns a *validation.ValidationError listing every failed field
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
