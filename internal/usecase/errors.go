package usecase

import (
	"errors"

	"fashion-shop/pkg/utils"
)

// Failure taxonomy. Repositories return wrapped database errors,
// services translate domain outcomes into these, handlers are the
// single place that maps them to HTTP status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// ValidationError carries the per-field messages produced by the
// request validator.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

// NewValidationError validates data and returns nil when it passes
func NewValidationError(data interface{}) error {
	if errs := utils.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
