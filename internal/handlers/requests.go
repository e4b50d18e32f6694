package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// PageRequest addresses the state of one page load.
type PageRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

// NavigateRequest asks a page to scroll to a section. Any section id is
// accepted; ids the page does not render only close the menu.
type NavigateRequest struct {
	PageRequest
	Section string `param:"section" validate:"required"`
}
