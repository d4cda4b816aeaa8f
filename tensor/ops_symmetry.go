package tensor

// ToSymmetric extends the given axis from length n to 2n−1 by appending
// the reversed tail a[n−2], …, a[0]-side entries: position n+j of the new
// axis mirrors position n−1−j of the original, for j = 0 … n−2.
//
// With asymmetric the mirrored entries are negated (an index ladder
// 0…n−1 becomes 0…n−1, −(n−1)…−1); with conjugate they are conjugated
// (how negative magnetic quantum numbers reuse positive-m values). Both
// flags may combine. Axes of length 0 or 1 are returned unchanged.
func ToSymmetric[T Scalar](a *Dense[T], axis int, asymmetric, conjugate bool) (*Dense[T], error) {
	ax, err := a.shape.axis(axis)
	if err != nil {
		return nil, err
	}

	n := a.shape[ax]
	if n <= 1 {
		return a.Clone(), nil
	}

	outShape := a.shape.Clone()
	outShape[ax] = 2*n - 1
	out := &Dense[T]{shape: outShape, data: make([]T, outShape.Size())}
	idx := make([]int, len(outShape))
	for flat := range out.data {
		unravel(flat, outShape, idx)
		k := idx[ax]
		mirrored := k >= n
		if mirrored {
			idx[ax] = 2*n - 1 - k
		}
		srcFlat, _ := a.flatIndex(idx)
		idx[ax] = k
		v := a.data[srcFlat]
		if mirrored {
			if conjugate {
				v = conjOf(v)
			}
			if asymmetric {
				v = -v
			}
		}
		out.data[flat] = v
	}

	return out, nil
}
