// Package common defines sentinel errors shared across the storage and
// service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// Draft validation errors.
	ErrEmptyName       = errors.New("product name is empty")
	ErrInvalidQuantity = errors.New("quantity must be a whole number of at least 1")
	ErrInvalidPrice    = errors.New("price must be a non-negative amount")
)
