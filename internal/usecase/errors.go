package usecase

import "errors"

// Sentinel errors returned by the usecase layer. Transport handlers map these
// onto HTTP status codes; everything else is treated as an internal failure.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
