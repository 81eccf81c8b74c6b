package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrIntegrity means an upstream document references an id missing from
	// another upstream document. The whole run is aborted.
	ErrIntegrity = errors.New("referential integrity violation")
	// ErrMalformedDocument means an upstream document is missing fields or
	// has the wrong shape.
	ErrMalformedDocument = errors.New("malformed upstream document")
)
