package tensor

import "fmt"

// ShiftNthRowNSteps shifts the i-th row along axisRow by i steps along
// axisShift: out[…, i, …, j, …] = a[…, i, …, j−i, …].
//
// With cutPadding the shifted axis keeps its length, entries pushed past
// the end are truncated and vacated slots take fill. Without cutPadding
// the shifted axis grows to hold every shifted row in full
// (len + rows − 1), fill-padding around each row.
//
// The evaluators use this as the surrogate→true quantum-number reindexing:
// the slots it fills correspond to unreachable quantum numbers and must
// carry the caller's fill value, never garbage. Row order is preserved.
func ShiftNthRowNSteps[T Scalar](a *Dense[T], axisRow, axisShift int, cutPadding bool, fill T) (*Dense[T], error) {
	rowAx, err := a.shape.axis(axisRow)
	if err != nil {
		return nil, err
	}
	shiftAx, err := a.shape.axis(axisShift)
	if err != nil {
		return nil, err
	}
	if rowAx == shiftAx {
		return nil, fmt.Errorf("%w: row and shift axes coincide (%d)", ErrBadAxis, rowAx)
	}

	srcLen := a.shape[shiftAx]
	outShape := a.shape.Clone()
	if !cutPadding && a.shape[rowAx] > 0 {
		outShape[shiftAx] = srcLen + a.shape[rowAx] - 1
	}

	out := &Dense[T]{shape: outShape, data: make([]T, outShape.Size())}
	idx := make([]int, len(outShape))
	for flat := range out.data {
		unravel(flat, outShape, idx)
		src := idx[shiftAx] - idx[rowAx]
		if src < 0 || src >= srcLen {
			out.data[flat] = fill
			continue
		}
		j := idx[shiftAx]
		idx[shiftAx] = src
		srcFlat, _ := a.flatIndex(idx)
		idx[shiftAx] = j
		out.data[flat] = a.data[srcFlat]
	}

	return out, nil
}
