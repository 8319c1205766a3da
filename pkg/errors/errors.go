package errors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized is returned when authentication fails
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// ErrValidation is returned when validation fails before any remote
// mutation is issued
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// NewDuplicateTitle builds the validation error for a rejected product title.
func NewDuplicateTitle(title string) *ErrValidation {
	return &ErrValidation{
		Message: "Product title already exists. Please use a different title.",
		Fields:  map[string]string{"productTitle": title},
	}
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool {
	var ve *ErrValidation
	return errors.As(err, &ve)
}
