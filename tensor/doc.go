// Package tensor provides dense n-dimensional arrays with NumPy-style
// trailing-axis broadcasting, the numeric substrate for the harmonic
// evaluators.
//
// The central type is Dense[T], a flat row-major buffer tagged with a
// Shape. Scalar element types are float32, float64, complex64 and
// complex128; most kernels are written once over the Scalar constraint.
//
// Beyond elementwise arithmetic the package factors out two reindexing
// primitives reused across the eigenfunction evaluators:
//
//   - ShiftNthRowNSteps — shift row i of one axis by i steps along another
//     axis, truncating overflow and filling vacated slots.
//   - ToSymmetric — extend an axis of length n to 2n−1 by mirroring its
//     tail, with optional negation and conjugation.
//
// All operations are pure: inputs are never mutated and every result is a
// freshly allocated buffer (Reshape and Expand return views sharing the
// backing slice, which is documented on the methods).
package tensor
