// Package tensor: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with
// context via fmt.Errorf and %w); callers match them with errors.Is.

package tensor

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a negative extent.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrShapeMismatch indicates that operand shapes cannot be broadcast
	// together. The wrapping error names the offending shapes.
	ErrShapeMismatch = errors.New("tensor: shapes are not broadcast-compatible")

	// ErrSizeMismatch indicates that supplied data does not match the
	// requested shape's element count.
	ErrSizeMismatch = errors.New("tensor: data length does not match shape")

	// ErrOutOfRange indicates that a multi-index is outside the array bounds
	// or has the wrong arity.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrBadAxis indicates an axis argument outside the array's rank, or two
	// axis arguments that must differ but do not.
	ErrBadAxis = errors.New("tensor: invalid axis")

	// ErrBadCount indicates a negative element count where a non-negative
	// one is required (e.g. Arange).
	ErrBadCount = errors.New("tensor: count must be non-negative")
)
