// Package errors provides custom error types for catalog operations.
package errors

import "errors"

var (
	// ErrProductNotFound is returned when no product exists with the requested ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyUpdate is returned when a partial update carries no updatable fields.
	ErrEmptyUpdate = errors.New("no fields to update")
)
