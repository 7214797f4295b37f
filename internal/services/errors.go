// Package services defines the business logic for orders and contact
// messages. This file centralizes common service-level error values so that
// they can be consistently returned by service methods and checked by callers.
//
// Translation into HTTP status codes is performed at the handler layer.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is matched by every *MissingFieldError.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidQuantity is returned when quantity is not a whole number >= 1.
	ErrInvalidQuantity = errors.New("quantity must be a whole number of at least 1")

	// ErrOrderNotFound indicates that the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")
)

// MissingFieldError names the first required field that was blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// Is lets errors.Is(err, ErrMissingField) match.
func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }
