// Package jacobi evaluates the Jacobi polynomial family P_n^{(α,β)} and
// its weighted-L² normalization constant, broadcasting over batched
// half-integer weight parameters.
//
// Jacobi returns the whole ladder of degrees [0, nEnd) at once via the
// classical three-term recurrence, because the harmonic evaluators always
// consume the full surrogate quantum-number range. NormalizationConstant
// works in log-gamma space so that large weights (deep coordinate trees)
// do not overflow intermediate gamma values.
package jacobi
