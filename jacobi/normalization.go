package jacobi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ultrasphere/tensor"
)

// NormalizationConstant returns 1/√h_n, where h_n is the weighted L² norm
// of P_n^{(α,β)} over [−1, 1] with weight (1−x)^α (1+x)^β:
//
//	h_n = 2^{α+β+1} / (2n+α+β+1) · Γ(n+α+1)Γ(n+β+1) / (Γ(n+α+β+1)·n!)
//
// Multiplying the Jacobi ladder by this constant yields an orthonormal
// family. alpha, beta and degree broadcast together; degree entries are
// the (real-valued) polynomial degrees n ≥ 0. The computation runs in
// log-gamma space to stay finite for large weights.
func NormalizationConstant[F tensor.Float](alpha, beta, degree *tensor.Dense[F]) (*tensor.Dense[F], error) {
	if err := checkWeights(alpha, beta); err != nil {
		return nil, err
	}
	for _, v := range degree.Data() {
		if v < 0 {
			return nil, fmt.Errorf("%w: degree %v", ErrBadDegree, v)
		}
	}

	shape, err := tensor.BroadcastShapes(alpha.Shape(), beta.Shape(), degree.Shape())
	if err != nil {
		return nil, err
	}
	out, err := tensor.New[F](shape...)
	if err != nil {
		return nil, err
	}

	aData, bData, nData := alpha.Data(), beta.Data(), degree.Data()
	aShape, bShape, nShape := alpha.Shape(), beta.Shape(), degree.Shape()
	dst := out.Data()
	for i := range dst {
		a := float64(aData[tensor.BroadcastIndex(i, shape, aShape)])
		b := float64(bData[tensor.BroadcastIndex(i, shape, bShape)])
		n := float64(nData[tensor.BroadcastIndex(i, shape, nShape)])
		dst[i] = F(math.Exp(-0.5 * logNorm(a, b, n)))
	}

	return out, nil
}

// logNorm computes ln h_n.
func logNorm(a, b, n float64) float64 {
	lg := func(x float64) float64 {
		v, _ := math.Lgamma(x)
		return v
	}

	return (a+b+1)*math.Ln2 - math.Log(2*n+a+b+1) +
		lg(n+a+1) + lg(n+b+1) - lg(n+a+b+1) - lg(n+1)
}
