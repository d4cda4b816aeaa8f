package jacobi

import (
	"fmt"

	"github.com/katalvlaran/ultrasphere/tensor"
)

// Jacobi evaluates the Jacobi polynomials P_n^{(α,β)}(x) for every degree
// n in [0, nEnd).
//
// alpha, beta and x broadcast together over leading (batch) axes; the
// result has the broadcast batch shape plus one trailing degree axis of
// extent nEnd. nEnd == 0 yields an empty trailing axis.
//
// The ladder is the standard three-term recurrence
//
//	P_0 = 1
//	P_1 = ((α−β) + (α+β+2)·x) / 2
//	c1·P_n = (c2·x + c3)·P_{n−1} − c4·P_{n−2}
//
// with c1 = 2n(n+α+β)(2n+α+β−2), c2 = (2n+α+β−1)(2n+α+β)(2n+α+β−2),
// c3 = (2n+α+β−1)(α²−β²), c4 = 2(n+α−1)(n+β−1)(2n+α+β), which is safe from
// zero pivots for α, β > −1.
func Jacobi[F tensor.Float](nEnd int, alpha, beta, x *tensor.Dense[F]) (*tensor.Dense[F], error) {
	if nEnd < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDegree, nEnd)
	}
	if err := checkWeights(alpha, beta); err != nil {
		return nil, err
	}

	batch, err := tensor.BroadcastShapes(alpha.Shape(), beta.Shape(), x.Shape())
	if err != nil {
		return nil, err
	}
	outShape := append(batch.Clone(), nEnd)
	out, err := tensor.New[F](outShape...)
	if err != nil {
		return nil, err
	}

	aData, bData, xData := alpha.Data(), beta.Data(), x.Data()
	aShape, bShape, xShape := alpha.Shape(), beta.Shape(), x.Shape()
	dst := out.Data()
	size := batch.Size()
	for e := 0; e < size; e++ {
		a := float64(aData[tensor.BroadcastIndex(e, batch, aShape)])
		b := float64(bData[tensor.BroadcastIndex(e, batch, bShape)])
		xx := float64(xData[tensor.BroadcastIndex(e, batch, xShape)])
		ladder(dst[e*nEnd:(e+1)*nEnd], a, b, xx)
	}

	return out, nil
}

// ladder fills dst[n] = P_n^{(a,b)}(x) for n = 0 … len(dst)−1.
func ladder[F tensor.Float](dst []F, a, b, x float64) {
	if len(dst) == 0 {
		return
	}
	p0 := 1.0
	dst[0] = F(p0)
	if len(dst) == 1 {
		return
	}
	p1 := ((a - b) + (a+b+2)*x) / 2
	dst[1] = F(p1)
	for n := 2; n < len(dst); n++ {
		fn := float64(n)
		s := 2*fn + a + b
		c1 := 2 * fn * (fn + a + b) * (s - 2)
		c2 := (s - 1) * s * (s - 2)
		c3 := (s - 1) * (a*a - b*b)
		c4 := 2 * (fn + a - 1) * (fn + b - 1) * s
		p := ((c2*x+c3)*p1 - c4*p0) / c1
		dst[n] = F(p)
		p0, p1 = p1, p
	}
}

// checkWeights validates that every weight entry lies in (−1, ∞).
func checkWeights[F tensor.Float](alpha, beta *tensor.Dense[F]) error {
	for _, v := range alpha.Data() {
		if !(float64(v) > -1) {
			return fmt.Errorf("%w: alpha=%v", ErrBadWeight, v)
		}
	}
	for _, v := range beta.Data() {
		if !(float64(v) > -1) {
			return fmt.Errorf("%w: beta=%v", ErrBadWeight, v)
		}
	}

	return nil
}
