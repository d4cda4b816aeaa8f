package harmonics

import (
	"fmt"

	"github.com/katalvlaran/ultrasphere/tensor"
)

// NDimHarmonics reports how many quantum-number axes the eigenfunction of
// a branching type carries: 1 for A, 2 for B and B′, 3 for C.
// A value outside the enumeration is a logic error upstream and returns
// ErrUnknownBranching.
func NDimHarmonics(t BranchingType) (int, error) {
	switch t {
	case BranchingA:
		return 1, nil
	case BranchingB, BranchingBPrime:
		return 2, nil
	case BranchingC:
		return 3, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownBranching, t)
	}
}

// ExpansionParams infers (nEnd, includeNegativeM) from a per-node mapping
// of expansion coefficient arrays: each angular node's last-axis extent is
// a candidate size, nEnd = (max size + 1) / 2 recovers the unmirrored
// degree bound, and negative m is assumed present iff some axis was
// mirrored (size ≠ nEnd).
//
// This is a best-effort heuristic over already-computed coefficients, not
// a validator; it only errors on the mapping contract itself (nil tree,
// missing node, rank-0 coefficients). A tree without angular nodes yields
// (0, false).
func ExpansionParams[T tensor.Scalar](c Coordinates, expansion map[string]*tensor.Dense[T]) (nEnd int, includeNegativeM bool, err error) {
	if c == nil {
		return 0, false, ErrNilCoordinates
	}
	nodes := c.AngularNodes()
	if len(nodes) == 0 {
		return 0, false, nil
	}

	sizes := make([]int, 0, len(nodes))
	for _, node := range nodes {
		arr, ok := expansion[node]
		if !ok || arr == nil {
			return 0, false, fmt.Errorf("%w: %q", ErrMissingNode, node)
		}
		shape := arr.Shape()
		if shape.Rank() == 0 {
			return 0, false, fmt.Errorf("%w: node %q has rank-0 coefficients", ErrBadExpansion, node)
		}
		sizes = append(sizes, shape[shape.Rank()-1])
	}

	nEnd, includeNegativeM = paramsFromSizes(sizes)

	return nEnd, includeNegativeM, nil
}

// ExpansionParamsFlat infers (nEnd, includeNegativeM) from one
// concatenated coefficient array whose trailing axes correspond, in
// canonical order, to the tree's angular nodes. Contracts match
// ExpansionParams.
func ExpansionParamsFlat[T tensor.Scalar](c Coordinates, expansion *tensor.Dense[T]) (nEnd int, includeNegativeM bool, err error) {
	if c == nil {
		return 0, false, ErrNilCoordinates
	}
	n := len(c.AngularNodes())
	if n == 0 {
		return 0, false, nil
	}
	if expansion == nil {
		return 0, false, fmt.Errorf("%w: nil expansion for %d angular nodes", ErrBadExpansion, n)
	}
	shape := expansion.Shape()
	if shape.Rank() < n {
		return 0, false, fmt.Errorf("%w: rank %d for %d angular nodes", ErrBadExpansion, shape.Rank(), n)
	}

	nEnd, includeNegativeM = paramsFromSizes(shape[shape.Rank()-n:])

	return nEnd, includeNegativeM, nil
}

// paramsFromSizes recovers the shared degree bound and the mirror flag
// from candidate axis extents.
func paramsFromSizes(sizes []int) (int, bool) {
	maxSize := 0
	for _, s := range sizes {
		if s > maxSize {
			maxSize = s
		}
	}
	nEnd := (maxSize + 1) / 2
	for _, s := range sizes {
		if s != nEnd {
			return nEnd, true
		}
	}

	return nEnd, false
}
