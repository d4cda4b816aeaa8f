// Package harmonics evaluates the per-node eigenfunctions of the
// hyperspherical harmonic decomposition and keeps their quantum-number
// bookkeeping straight.
//
// 🚀 What does it do?
//
//	An n-sphere decomposes into a binary tree of coordinate nodes; every
//	node carries a local angle and a branching type. This package provides
//	one pure evaluator per type:
//		• TypeA      — azimuthal exponentials e^{imθ}/√(2π) over [0, 2π)
//		• TypeB      — sin-weighted Jacobi coupling over [0, π]
//		• TypeBPrime — cos-weighted mirror coupling over [−π/2, π/2]
//		• TypeC      — two-subtree coupling over [0, π/2]
//
// Index bookkeeping, the subtle part:
//
//   - Internally degrees run over a contiguous surrogate index
//     n ∈ [0, nEnd); the true quantum number is l = n + l_child (B, B′) or
//     l = 2n + l_α + l_β (C). The default output is reindexed to true l by
//     diagonal shifts; unreachable combinations hold the caller's fill
//     value so downstream tensor contraction never branches.
//   - Negative magnetic quantum numbers are never recomputed: a size-nEnd
//     axis is mirrored to 2·nEnd−1 entries ordered
//     [0 … nEnd−1, −(nEnd−1) … −1], reusing positive-m values by symmetry.
//
// ExpansionParams recovers (nEnd, includeNegativeM) from existing
// coefficient arrays, NDimHarmonics reports how many quantum-number axes a
// branching type carries, and EvaluateNodes drives all four evaluators
// concurrently over a coordinate tree.
//
// All evaluators are stateless and allocate fresh outputs; leading batch
// axes broadcast through untouched.
package harmonics
