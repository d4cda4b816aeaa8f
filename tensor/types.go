package tensor

import (
	"fmt"
	"strings"
)

// Float is the constraint for real element types.
type Float interface {
	float32 | float64
}

// Complex is the constraint for complex element types.
type Complex interface {
	complex64 | complex128
}

// Scalar is the constraint for all supported element types.
type Scalar interface {
	Float | Complex
}

// Shape describes the extent of each axis of a Dense array.
// A zero-length Shape denotes a rank-0 (scalar) array of size 1.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// Size returns the total number of elements, i.e. the product of all
// extents. The empty shape has size 1.
func (s Shape) Size() int {
	size := 1
	for _, d := range s {
		size *= d
	}

	return size
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Equal reports whether two shapes have identical rank and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// String renders the shape as "(d0, d1, …)" for error messages.
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprintf("%d", d)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// valid reports whether every extent is non-negative.
func (s Shape) valid() bool {
	for _, d := range s {
		if d < 0 {
			return false
		}
	}

	return true
}

// axis normalizes a possibly negative axis index (-1 is the last axis)
// and validates it against the shape's rank.
func (s Shape) axis(ax int) (int, error) {
	if ax < 0 {
		ax += len(s)
	}
	if ax < 0 || ax >= len(s) {
		return 0, fmt.Errorf("%w: axis %d of rank-%d array", ErrBadAxis, ax, len(s))
	}

	return ax, nil
}
