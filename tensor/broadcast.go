package tensor

import (
	"fmt"
	"strings"
)

// BroadcastShapes computes the common shape of the given shapes under
// NumPy-style trailing-axis alignment: axes are matched from the right,
// and on each axis extents must agree or be 1.
// Returns ErrShapeMismatch (naming all offending shapes) when no common
// shape exists.
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	rank := 0
	for _, s := range shapes {
		if len(s) > rank {
			rank = len(s)
		}
	}
	out := make(Shape, rank)
	for ax := range out {
		out[ax] = 1
	}
	for _, s := range shapes {
		offset := rank - len(s)
		for i, d := range s {
			ax := offset + i
			switch {
			case d == out[ax] || d == 1:
				// compatible, keep current extent
			case out[ax] == 1:
				out[ax] = d
			default:
				return nil, fmt.Errorf("%w: %s", ErrShapeMismatch, formatShapes(shapes))
			}
		}
	}

	return out, nil
}

// IsSameShape reports whether the shapes broadcast together (extents equal
// on each trailing axis, ignoring 1s).
func IsSameShape(shapes ...Shape) bool {
	_, err := BroadcastShapes(shapes...)

	return err == nil
}

// CheckSameShape validates that the shapes broadcast together, returning a
// ErrShapeMismatch naming the offending shapes otherwise. Callers use it
// defensively before batched evaluation.
func CheckSameShape(shapes ...Shape) error {
	if _, err := BroadcastShapes(shapes...); err != nil {
		return err
	}

	return nil
}

// formatShapes renders a shape list for error messages.
func formatShapes(shapes []Shape) string {
	parts := make([]string, len(shapes))
	for i, s := range shapes {
		parts[i] = s.String()
	}

	return strings.Join(parts, " vs ")
}

// BroadcastIndex maps a flat row-major index in the broadcast result shape
// out to the flat offset in an operand of shape in, aligned at trailing
// axes. Size-1 operand axes contribute offset 0 regardless of the output
// coordinate. It is the building block for kernels that iterate a
// broadcast result while reading several operands.
func BroadcastIndex(flat int, out, in Shape) int {
	return bcastIndex(flat, out, in)
}

// bcastIndex maps a flat index in the broadcast result shape out to the
// flat offset in an operand of shape in, aligned at trailing axes.
// Size-1 operand axes contribute offset 0 regardless of the output
// coordinate.
func bcastIndex(flat int, out, in Shape) int {
	if len(in) == 0 {
		return 0
	}
	idx := 0
	stride := 1
	offset := len(out) - len(in)
	for ax := len(out) - 1; ax >= 0; ax-- {
		dim := out[ax]
		coord := 0
		if dim > 0 {
			coord = flat % dim
			flat /= dim
		}
		axIn := ax - offset
		if axIn < 0 {
			continue
		}
		if in[axIn] != 1 {
			idx += coord * stride
		}
		stride *= in[axIn]
	}

	return idx
}

// unravel decodes a flat row-major offset into idx (len(idx) == len(shape)).
func unravel(flat int, shape Shape, idx []int) {
	for ax := len(shape) - 1; ax >= 0; ax-- {
		dim := shape[ax]
		if dim > 0 {
			idx[ax] = flat % dim
			flat /= dim
		} else {
			idx[ax] = 0
		}
	}
}
