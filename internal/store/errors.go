package store

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned when a stock decrement would go below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidInput is returned when a write is attempted with invalid fields.
	ErrInvalidInput = errors.New("invalid input")
)
