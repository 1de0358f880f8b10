package domain

import "errors"

// Sentinel errors returned by stores and services. Handlers map these to
// HTTP status codes; everything else is a 500.
var (
	// ErrNotFound covers both "does not exist" and "not owned by the
	// caller" so responses never reveal which one it was.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks a request the caller can fix.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflict marks a uniqueness violation (duplicate email,
	// category name, or budget key).
	ErrConflict = errors.New("conflict")
)
