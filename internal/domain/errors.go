package domain

import "errors"

var (
	// ErrNotFound is returned when a user, post or like does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDimensionMismatch is returned when a vector does not have the configured number of components.
	// Seeing this on a read means a write path stored a corrupt vector.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrNonFiniteVector is returned when a vector contains NaN or infinite components.
	ErrNonFiniteVector = errors.New("vector has non-finite components")

	// ErrConflict is returned when a write violates a uniqueness constraint, such as a duplicate like.
	ErrConflict = errors.New("conflict")

	// ErrUpstreamFailure is returned when the embedding service or blob store fails.
	ErrUpstreamFailure = errors.New("upstream failure")
)
