package harmonics

// TypeAOptions configures the azimuthal evaluator.
//
// Fields:
//   - CondonShortleyPhase — multiply by (−1)^m on non-negative orders
//     (the quantum-mechanics sign convention). Off by default.
//   - IncludeNegativeM — extend the m axis to the signed ladder
//     [0 … nEnd−1, −(nEnd−1) … −1] by mirroring. On by default.
type TypeAOptions struct {
	CondonShortleyPhase bool
	IncludeNegativeM    bool
}

// DefaultTypeAOptions returns the defaults: no phase, negative m included.
func DefaultTypeAOptions() TypeAOptions {
	return TypeAOptions{IncludeNegativeM: true}
}

// TypeBOptions configures the type-B evaluator.
//
// Fields:
//   - SurrogateIndex — keep the contiguous surrogate degree n on the last
//     axis instead of reindexing to the true quantum number l = n + l_β.
//   - NegativeMBeta — set when the β child is a type-A node evaluated with
//     negative m included; mirrors the l_β axis (no sign change, the
//     coupling is invariant under the sign of the child's m).
//   - Fill — value written into unreachable index combinations (l < l_β).
type TypeBOptions struct {
	SurrogateIndex bool
	NegativeMBeta  bool
	Fill           float64
}

// DefaultTypeBOptions returns the defaults: true-index mode, no mirror,
// zero fill.
func DefaultTypeBOptions() TypeBOptions { return TypeBOptions{} }

// TypeBPrimeOptions configures the type-B′ evaluator; it mirrors
// TypeBOptions with the α child in place of the β child.
type TypeBPrimeOptions struct {
	SurrogateIndex bool
	NegativeMAlpha bool
	Fill           float64
}

// DefaultTypeBPrimeOptions returns the defaults: true-index mode, no
// mirror, zero fill.
func DefaultTypeBPrimeOptions() TypeBPrimeOptions { return TypeBPrimeOptions{} }

// TypeCOptions configures the type-C evaluator.
//
// Fields:
//   - SurrogateIndex — keep the surrogate degree axis (length ⌈nEnd/2⌉)
//     instead of reindexing to l = 2n + l_α + l_β (length nEnd).
//   - NegativeMAlpha / NegativeMBeta — mirror the l_α / l_β axis when the
//     corresponding child is a type-A node with negative m included. The
//     two flags are independent.
//   - Fill — value for unreachable combinations (l < l_α + l_β or parity
//     mismatch).
type TypeCOptions struct {
	SurrogateIndex bool
	NegativeMAlpha bool
	NegativeMBeta  bool
	Fill           float64
}

// DefaultTypeCOptions returns the defaults: true-index mode, no mirrors,
// zero fill.
func DefaultTypeCOptions() TypeCOptions { return TypeCOptions{} }
