package jacobi

import "errors"

var (
	// ErrBadDegree is returned when a degree bound is negative.
	ErrBadDegree = errors.New("jacobi: degree bound must be non-negative")

	// ErrBadWeight is returned when a weight parameter is not greater
	// than -1, outside the Jacobi family's domain.
	ErrBadWeight = errors.New("jacobi: weight parameters must be > -1")
)
