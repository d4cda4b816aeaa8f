// Package harmonics: sentinel error set. Evaluators return these
// (possibly wrapped with context); callers match with errors.Is.
// Note that invalid quantum-number combinations are deliberately NOT
// errors — they surface as fill values in the output.

package harmonics

import "errors"

var (
	// ErrBadDegree is returned when a degree bound nEnd is negative.
	ErrBadDegree = errors.New("harmonics: degree bound must be non-negative")

	// ErrUnknownBranching marks a branching type outside the closed
	// A/B/B′/C enumeration — a programming error upstream, propagated
	// immediately.
	ErrUnknownBranching = errors.New("harmonics: unknown branching type")

	// ErrPrecisionMismatch is returned by TypeA when the requested complex
	// precision class does not match the real input's (complex64 pairs
	// with float32, complex128 with float64).
	ErrPrecisionMismatch = errors.New("harmonics: complex precision does not match input precision")

	// ErrNilCoordinates indicates a nil coordinate tree.
	ErrNilCoordinates = errors.New("harmonics: coordinates must not be nil")

	// ErrMissingNode indicates that an expansion mapping lacks a
	// coefficient array for an angular node.
	ErrMissingNode = errors.New("harmonics: expansion missing node")

	// ErrBadExpansion indicates a coefficient array with too few axes for
	// the tree's angular node count.
	ErrBadExpansion = errors.New("harmonics: expansion has too few axes")

	// ErrMissingAngle indicates that EvaluateNodes received no angle batch
	// for an angular node.
	ErrMissingAngle = errors.New("harmonics: no angle batch for node")
)
