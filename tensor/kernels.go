package tensor

import (
	"math"
	"math/cmplx"
)

// Scalar kernels shared by the elementwise ops. Real kernels round-trip
// through float64, which is exact for float64 and correctly rounded for
// float32; complex kernels go through complex128 the same way.

func sinOf[F Float](x F) F { return F(math.Sin(float64(x))) }

func cosOf[F Float](x F) F { return F(math.Cos(float64(x))) }

func powOf[F Float](x, p F) F { return F(math.Pow(float64(x), float64(p))) }

// conjOf returns the complex conjugate, or the value itself for real types.
func conjOf[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex64(cmplx.Conj(complex128(x)))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	default:
		return v
	}
}
