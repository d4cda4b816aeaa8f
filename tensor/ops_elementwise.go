package tensor

// Map applies f to every element, returning a fresh array of the same shape.
func Map[T Scalar](a *Dense[T], f func(T) T) *Dense[T] {
	out := &Dense[T]{shape: a.shape.Clone(), data: make([]T, len(a.data))}
	for i, v := range a.data {
		out.data[i] = f(v)
	}

	return out
}

// MapTo applies f to every element, producing an array of a different
// scalar type with the same shape. This is how real angle batches become
// complex eigenfunction samples.
func MapTo[T, U Scalar](a *Dense[T], f func(T) U) *Dense[U] {
	out := &Dense[U]{shape: a.shape.Clone(), data: make([]U, len(a.data))}
	for i, v := range a.data {
		out.data[i] = f(v)
	}

	return out
}

// Zip applies f elementwise over the broadcast of a and b.
// Returns ErrShapeMismatch when the shapes are not broadcast-compatible.
func Zip[T Scalar](a, b *Dense[T], f func(T, T) T) (*Dense[T], error) {
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	out := &Dense[T]{shape: shape, data: make([]T, shape.Size())}
	for i := range out.data {
		out.data[i] = f(a.data[bcastIndex(i, shape, a.shape)], b.data[bcastIndex(i, shape, b.shape)])
	}

	return out, nil
}

// Add returns a + b under broadcasting.
func Add[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	return Zip(a, b, func(x, y T) T { return x + y })
}

// Sub returns a − b under broadcasting.
func Sub[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	return Zip(a, b, func(x, y T) T { return x - y })
}

// Mul returns the elementwise product of a and b under broadcasting.
func Mul[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	return Zip(a, b, func(x, y T) T { return x * y })
}

// Div returns the elementwise quotient a / b under broadcasting.
func Div[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	return Zip(a, b, func(x, y T) T { return x / y })
}

// Scale multiplies every element by s.
func Scale[T Scalar](a *Dense[T], s T) *Dense[T] {
	return Map(a, func(v T) T { return s * v })
}

// Pow raises base to exp elementwise under broadcasting.
// Note math.Pow semantics: 0^0 == 1, which the evaluators rely on for the
// zero-order weight rows.
func Pow[F Float](base, exp *Dense[F]) (*Dense[F], error) {
	return Zip(base, exp, powOf[F])
}

// Sin applies the sine elementwise.
func Sin[F Float](a *Dense[F]) *Dense[F] { return Map(a, sinOf[F]) }

// Cos applies the cosine elementwise.
func Cos[F Float](a *Dense[F]) *Dense[F] { return Map(a, cosOf[F]) }

// Conj conjugates every element; real arrays are returned unchanged in
// value (but still freshly allocated).
func Conj[T Scalar](a *Dense[T]) *Dense[T] { return Map(a, conjOf[T]) }
