package tensor

import "fmt"

// Dense is a flat, row-major n-dimensional array of T values.
// The backing slice holds exactly shape.Size() elements; the element at
// multi-index (i0, i1, …) lives at offset i0·stride0 + i1·stride1 + … with
// row-major strides.
type Dense[T Scalar] struct {
	shape Shape // extents per axis; empty for rank-0
	data  []T   // flat backing storage, length == shape.Size()
}

// New creates a zero-filled array of the given shape.
// Returns ErrBadShape if any extent is negative.
func New[T Scalar](shape ...int) (*Dense[T], error) {
	s := Shape(shape).Clone()
	if !s.valid() {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, s)
	}

	return &Dense[T]{shape: s, data: make([]T, s.Size())}, nil
}

// Full creates an array of the given shape with every element set to v.
func Full[T Scalar](v T, shape ...int) (*Dense[T], error) {
	out, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	for i := range out.data {
		out.data[i] = v
	}

	return out, nil
}

// Of wraps a single value as a rank-0 array, convenient for scalar
// parameters that must broadcast against batched operands.
func Of[T Scalar](v T) *Dense[T] {
	return &Dense[T]{shape: Shape{}, data: []T{v}}
}

// FromSlice wraps data as an array of the given shape.
// The slice is copied; returns ErrSizeMismatch if lengths disagree.
func FromSlice[T Scalar](data []T, shape ...int) (*Dense[T], error) {
	s := Shape(shape).Clone()
	if !s.valid() {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, s)
	}
	if len(data) != s.Size() {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrSizeMismatch, len(data), s)
	}
	cp := make([]T, len(data))
	copy(cp, data)

	return &Dense[T]{shape: s, data: cp}, nil
}

// Arange creates a rank-1 array holding 0, 1, …, n−1.
// Returns ErrBadCount for negative n.
func Arange[F Float](n int) (*Dense[F], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	out := &Dense[F]{shape: Shape{n}, data: make([]F, n)}
	for i := 0; i < n; i++ {
		out.data[i] = F(i)
	}

	return out, nil
}

// Shape returns a copy of the array's shape.
func (d *Dense[T]) Shape() Shape { return d.shape.Clone() }

// Rank returns the number of axes.
func (d *Dense[T]) Rank() int { return len(d.shape) }

// Size returns the total number of elements.
func (d *Dense[T]) Size() int { return len(d.data) }

// Data exposes the backing slice in row-major order.
// Mutations through the slice are visible in the array; use Clone first to
// keep the original intact.
func (d *Dense[T]) Data() []T { return d.data }

// flatIndex converts a multi-index to a flat offset, validating arity and
// bounds.
func (d *Dense[T]) flatIndex(idx []int) (int, error) {
	if len(idx) != len(d.shape) {
		return 0, fmt.Errorf("%w: %d indices for rank-%d array", ErrOutOfRange, len(idx), len(d.shape))
	}
	flat := 0
	for ax, i := range idx {
		if i < 0 || i >= d.shape[ax] {
			return 0, fmt.Errorf("%w: index %d on axis %d of %v", ErrOutOfRange, i, ax, d.shape)
		}
		flat = flat*d.shape[ax] + i
	}

	return flat, nil
}

// At retrieves the element at the given multi-index.
func (d *Dense[T]) At(idx ...int) (T, error) {
	flat, err := d.flatIndex(idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return d.data[flat], nil
}

// Set assigns v at the given multi-index.
func (d *Dense[T]) Set(v T, idx ...int) error {
	flat, err := d.flatIndex(idx)
	if err != nil {
		return err
	}
	d.data[flat] = v

	return nil
}

// Clone returns a deep copy of the array.
func (d *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(d.data))
	copy(cp, d.data)

	return &Dense[T]{shape: d.shape.Clone(), data: cp}
}

// Reshape returns a view of the same elements under a new shape.
// The backing slice is shared; total size must be preserved.
func (d *Dense[T]) Reshape(shape ...int) (*Dense[T], error) {
	s := Shape(shape).Clone()
	if !s.valid() {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, s)
	}
	if s.Size() != len(d.data) {
		return nil, fmt.Errorf("%w: reshape %v to %v", ErrSizeMismatch, d.shape, s)
	}

	return &Dense[T]{shape: s, data: d.data}, nil
}

// Expand returns a view with k trailing axes of extent 1 appended,
// the usual preparation step before broadcasting against an index ladder.
// The backing slice is shared.
func (d *Dense[T]) Expand(k int) *Dense[T] {
	s := make(Shape, 0, len(d.shape)+k)
	s = append(s, d.shape...)
	for i := 0; i < k; i++ {
		s = append(s, 1)
	}

	return &Dense[T]{shape: s, data: d.data}
}
