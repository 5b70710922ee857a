package service

import "errors"

var (
	// ErrProductNotFound is returned when an order line item references a
	// product id that does not exist. The whole order is rejected.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidOrder is returned when an order request fails validation.
	ErrInvalidOrder = errors.New("invalid order request")
)
