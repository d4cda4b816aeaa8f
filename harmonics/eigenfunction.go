package harmonics

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/ultrasphere/jacobi"
	"github.com/katalvlaran/ultrasphere/tensor"
)

// The maximum absolute quantum number of a child node never exceeds its
// parent's, so every evaluator takes one shared degree bound nEnd and
// sizes all quantum-number axes by it. Negative m for type A is never
// computed directly: Y_{-m} = conj(Y_m) up to the optional
// Condon–Shortley sign, so the signed ladder is a mirror of the
// non-negative half.

// TypeA evaluates the azimuthal eigenfunction Y_m(θ) = e^{imθ}/√(2π) for
// θ over [0, 2π).
//
// The complex precision class C must match the input precision class F
// (complex64 with float32, complex128 with float64); the mismatch is
// reported as ErrPrecisionMismatch. With IncludeNegativeM (the default)
// the trailing axis has extent 2·nEnd−1 ordered
// [0, 1, …, nEnd−1, −(nEnd−1), …, −1]; otherwise extent nEnd. nEnd == 0
// degenerates to an empty trailing axis.
//
// With CondonShortleyPhase the result is multiplied by
// (−1)^((m+|m|)/2) — the conventional (−1)^m on non-negative orders and 1
// on negative orders.
func TypeA[C tensor.Complex, F tensor.Float](theta *tensor.Dense[F], nEnd int, opts *TypeAOptions) (*tensor.Dense[C], error) {
	if nEnd < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDegree, nEnd)
	}
	if err := checkPrecision[C, F](); err != nil {
		return nil, err
	}
	o := DefaultTypeAOptions()
	if opts != nil {
		o = *opts
	}

	m, err := tensor.Arange[F](nEnd)
	if err != nil {
		return nil, err
	}
	if o.IncludeNegativeM {
		if m, err = tensor.ToSymmetric(m, -1, true, false); err != nil {
			return nil, err
		}
	}

	phase, err := tensor.Mul(theta.Expand(1), m)
	if err != nil {
		return nil, err
	}

	invRoot := 1 / math.Sqrt(2*math.Pi)
	res := tensor.MapTo(phase, func(p F) C {
		return toComplex[C](cmplx.Exp(complex(0, float64(p))) * complex(invRoot, 0))
	})

	if o.CondonShortleyPhase {
		cs := tensor.MapTo(m, condonShortley[C, F])
		if res, err = tensor.Mul(res, cs); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// TypeB evaluates the type-B eigenfunction for θ over [0, π]: the weight
// α = l_β + s_β/2 drives a Jacobi ladder at x = cos θ with equal weights
// on both sides, normalized and multiplied by (sin θ)^{l_β}.
//
// The result is indexed [..., l_β, n] (surrogate mode) or [..., l_β, l]
// with l = n + l_β (default), both of trailing extent (nEnd, nEnd);
// combinations with l < l_β hold opts.Fill. sBeta is the β child's
// non-leaf descendant count; nil means 0, and a batched array broadcasts
// against θ's batch axes.
func TypeB[F tensor.Float](theta *tensor.Dense[F], nEnd int, sBeta *tensor.Dense[F], opts *TypeBOptions) (*tensor.Dense[F], error) {
	o := DefaultTypeBOptions()
	if opts != nil {
		o = *opts
	}

	return typeBFamily(theta, nEnd, sBeta, false, o.SurrogateIndex, o.NegativeMBeta, F(o.Fill))
}

// TypeBPrime evaluates the type-B′ eigenfunction for θ over [−π/2, π/2]:
// the structural mirror of TypeB with sin and cos swapped — weight
// β = l_α + s_α/2, Jacobi at x = sin θ, (cos θ)^{l_α} factor — and the
// α child in place of the β child. All other contracts match TypeB.
func TypeBPrime[F tensor.Float](theta *tensor.Dense[F], nEnd int, sAlpha *tensor.Dense[F], opts *TypeBPrimeOptions) (*tensor.Dense[F], error) {
	o := DefaultTypeBPrimeOptions()
	if opts != nil {
		o = *opts
	}

	return typeBFamily(theta, nEnd, sAlpha, true, o.SurrogateIndex, o.NegativeMAlpha, F(o.Fill))
}

// typeBFamily is the shared B/B′ kernel; prime swaps the sin/cos roles.
func typeBFamily[F tensor.Float](theta *tensor.Dense[F], nEnd int, s *tensor.Dense[F], prime, surrogate, mirrorChild bool, fill F) (*tensor.Dense[F], error) {
	if nEnd < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDegree, nEnd)
	}
	if s == nil {
		s = tensor.Of[F](0)
	}

	// lChild ranges over the coupled child's quantum number, deg over the
	// surrogate degree; both axes have extent nEnd.
	lChild, err := tensor.Arange[F](nEnd)
	if err != nil {
		return nil, err
	}
	deg, err := tensor.Arange[F](nEnd)
	if err != nil {
		return nil, err
	}
	weight, err := tensor.Add(tensor.Scale(s, F(0.5)).Expand(1), lChild) // [..., l_child]
	if err != nil {
		return nil, err
	}

	x, pow := tensor.Cos(theta), tensor.Sin(theta)
	if prime {
		x, pow = pow, x
	}

	p, err := jacobi.Jacobi(nEnd, weight, weight, x.Expand(1)) // [..., l_child, n]
	if err != nil {
		return nil, err
	}
	norm, err := jacobi.NormalizationConstant(weight.Expand(1), weight.Expand(1), deg)
	if err != nil {
		return nil, err
	}
	powGrid, err := tensor.Pow(pow.Expand(2), lChild.Expand(1)) // [..., l_child, 1]
	if err != nil {
		return nil, err
	}

	res, err := tensor.Mul(norm, p)
	if err != nil {
		return nil, err
	}
	if res, err = tensor.Mul(res, powGrid); err != nil {
		return nil, err
	}

	if !surrogate {
		// [l_child, n] -> [l_child, l = n + l_child]
		if res, err = tensor.ShiftNthRowNSteps(res, -2, -1, true, fill); err != nil {
			return nil, err
		}
	}
	if mirrorChild {
		if res, err = tensor.ToSymmetric(res, -2, false, false); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// TypeC evaluates the type-C eigenfunction for θ over [0, π/2], coupling
// two subtrees with weights α = l_α + s_α/2 and β = l_β + s_β/2: a Jacobi
// ladder of degree bound ⌈nEnd/2⌉ at x = cos 2θ, scaled by
// 2^{(α+β)/2+1}, the normalization constant, and
// (sin θ)^{l_β} (cos θ)^{l_α}.
//
// The default result is indexed [..., l_α, l_β, l] with
// l = 2n + l_α + l_β, trailing extents (nEnd, nEnd, nEnd); only
// same-parity combinations with l ≥ l_α + l_β are reachable, the rest
// hold opts.Fill. Surrogate mode keeps the raw degree axis of extent
// ⌈nEnd/2⌉ instead. sAlpha/sBeta follow the TypeB conventions.
func TypeC[F tensor.Float](theta *tensor.Dense[F], nEnd int, sAlpha, sBeta *tensor.Dense[F], opts *TypeCOptions) (*tensor.Dense[F], error) {
	if nEnd < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDegree, nEnd)
	}
	o := DefaultTypeCOptions()
	if opts != nil {
		o = *opts
	}
	if sAlpha == nil {
		sAlpha = tensor.Of[F](0)
	}
	if sBeta == nil {
		sBeta = tensor.Of[F](0)
	}
	fill := F(o.Fill)
	nHalf := (nEnd + 1) / 2

	ladder, err := tensor.Arange[F](nEnd)
	if err != nil {
		return nil, err
	}
	la := ladder.Expand(1) // [l_α, 1]
	lb := ladder           // [l_β]
	deg, err := tensor.Arange[F](nHalf)
	if err != nil {
		return nil, err
	}

	alpha, err := tensor.Add(tensor.Scale(sAlpha, F(0.5)).Expand(2), la) // [..., l_α, 1]
	if err != nil {
		return nil, err
	}
	beta, err := tensor.Add(tensor.Scale(sBeta, F(0.5)).Expand(2), lb) // [..., 1, l_β]
	if err != nil {
		return nil, err
	}

	sum, err := tensor.Add(alpha, beta) // [..., l_α, l_β]
	if err != nil {
		return nil, err
	}
	scale := tensor.Map(sum, func(v F) F { return F(math.Pow(2, float64(v)/2+1)) })

	x2 := tensor.Cos(tensor.Scale(theta, F(2)))
	// alpha and beta are intentionally exchanged in this call; the type-C
	// degree ladder identity requires the swapped weights.
	p, err := jacobi.Jacobi(nHalf, beta, alpha, x2.Expand(2)) // [..., l_α, l_β, n]
	if err != nil {
		return nil, err
	}
	norm, err := jacobi.NormalizationConstant(alpha.Expand(1), beta.Expand(1), deg)
	if err != nil {
		return nil, err
	}
	sinPow, err := tensor.Pow(tensor.Sin(theta).Expand(3), lb.Expand(1)) // [..., 1, l_β, 1]
	if err != nil {
		return nil, err
	}
	cosPow, err := tensor.Pow(tensor.Cos(theta).Expand(3), la.Expand(1)) // [..., l_α, 1, 1]
	if err != nil {
		return nil, err
	}

	res, err := tensor.Mul(scale.Expand(1), norm)
	if err != nil {
		return nil, err
	}
	for _, factor := range []*tensor.Dense[F]{sinPow, cosPow, p} {
		if res, err = tensor.Mul(res, factor); err != nil {
			return nil, err
		}
	}

	if !o.SurrogateIndex {
		// [l_α, l_β, n] -> [l_α, l_β, l = 2n + l_α + l_β], in three steps:
		// interleave n onto even slots (odd parities are structurally
		// zero), then shift against l_α, then against l_β.
		if res, err = interleaveEven(res, nEnd); err != nil {
			return nil, err
		}
		if res, err = tensor.ShiftNthRowNSteps(res, -3, -1, true, fill); err != nil {
			return nil, err
		}
		if res, err = tensor.ShiftNthRowNSteps(res, -2, -1, true, fill); err != nil {
			return nil, err
		}
	}
	if o.NegativeMAlpha {
		if res, err = tensor.ToSymmetric(res, -3, false, false); err != nil {
			return nil, err
		}
	}
	if o.NegativeMBeta {
		if res, err = tensor.ToSymmetric(res, -2, false, false); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// interleaveEven widens the last axis to width, placing source entry k at
// position 2k and zeros elsewhere. The scratch is freshly allocated per
// call.
func interleaveEven[F tensor.Float](a *tensor.Dense[F], width int) (*tensor.Dense[F], error) {
	shape := a.Shape()
	srcLen := shape[len(shape)-1]
	shape[len(shape)-1] = width
	out, err := tensor.New[F](shape...)
	if err != nil {
		return nil, err
	}
	src, dst := a.Data(), out.Data()
	rows := 0
	if srcLen > 0 {
		rows = len(src) / srcLen
	}
	for r := 0; r < rows; r++ {
		for k := 0; k < srcLen && 2*k < width; k++ {
			dst[r*width+2*k] = src[r*srcLen+k]
		}
	}

	return out, nil
}

// condonShortley returns (−1)^((m+|m|)/2): (−1)^m for m ≥ 0 and 1 for
// m < 0. The phase multiplies only non-negative orders; do not collapse
// this to (−1)^m over the signed ladder.
func condonShortley[C tensor.Complex, F tensor.Float](m F) C {
	k := int(float64(m)+math.Abs(float64(m))) / 2
	if k%2 != 0 {
		return toComplex[C](-1)
	}

	return toComplex[C](1)
}

// toComplex narrows a complex128 to the requested precision class.
func toComplex[C tensor.Complex](v complex128) C {
	var c C
	if _, ok := any(c).(complex64); ok {
		return any(complex64(v)).(C)
	}

	return any(v).(C)
}

// checkPrecision validates the complex/real precision pairing of TypeA's
// type arguments.
func checkPrecision[C tensor.Complex, F tensor.Float]() error {
	var c C
	var f F
	_, c64 := any(c).(complex64)
	_, f32 := any(f).(float32)
	if c64 != f32 {
		return fmt.Errorf("%w: %T with %T input", ErrPrecisionMismatch, c, f)
	}

	return nil
}
