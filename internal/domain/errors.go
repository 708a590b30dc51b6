package domain

import "errors"

// Sentinel errors translated to HTTP statuses at the handler boundary.
// Services wrap them with %w to add detail without losing the class.
var (
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
)
