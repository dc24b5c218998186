// Package apperr defines the error taxonomy shared by the app services.
// Services wrap these sentinels with context; the HTTP layer maps them
// to status codes in one place.
package apperr

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
