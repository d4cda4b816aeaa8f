package harmonics

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ultrasphere/tensor"
)

// EvalOptions configures EvaluateNodes.
//
// Fields:
//   - CondonShortleyPhase — forwarded to every type-A node.
//   - IncludeNegativeM — evaluate type-A nodes over the signed m ladder
//     and mirror the matching child axes of their parents. On by default.
//   - Fill — fill value for unreachable quantum-number combinations.
type EvalOptions struct {
	CondonShortleyPhase bool
	IncludeNegativeM    bool
	Fill                float64
}

// DefaultEvalOptions returns the defaults: no phase, negative m included,
// zero fill.
func DefaultEvalOptions() EvalOptions {
	return EvalOptions{IncludeNegativeM: true}
}

// EvaluateNodes evaluates the eigenfunction of every angular node of the
// tree at its angle batch, one goroutine per node — the evaluators share
// no state, so per-node evaluation is embarrassingly parallel. Results
// are keyed by node name and promoted to complex128 so downstream tensor
// contraction sees a single dtype; all non-type-A results are true-index
// (not surrogate) so trailing axes line up at extent nEnd.
//
// theta maps each angular node to its local angle batch. Negative-m
// mirror flags are derived per node: a child axis is mirrored iff the
// child is a type-A node and IncludeNegativeM is set.
//
// The combination of per-node outputs into a full hyperspherical harmonic
// (contraction over shared batch axes) is the caller's concern.
func EvaluateNodes(ctx context.Context, tree Tree, theta map[string]*tensor.Dense[float64], nEnd int, opts *EvalOptions) (map[string]*tensor.Dense[complex128], error) {
	if tree == nil {
		return nil, ErrNilCoordinates
	}
	if nEnd < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDegree, nEnd)
	}
	o := DefaultEvalOptions()
	if opts != nil {
		o = *opts
	}

	out := make(map[string]*tensor.Dense[complex128], len(tree.AngularNodes()))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, node := range tree.AngularNodes() {
		node := node
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := evaluateNode(tree, node, theta, nEnd, o)
			if err != nil {
				return err
			}
			mu.Lock()
			out[node] = res
			mu.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// evaluateNode dispatches one node to its branching type's evaluator.
func evaluateNode(tree Tree, node string, theta map[string]*tensor.Dense[float64], nEnd int, o EvalOptions) (*tensor.Dense[complex128], error) {
	th, ok := theta[node]
	if !ok || th == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingAngle, node)
	}
	bt, err := tree.BranchingTypeOf(node)
	if err != nil {
		return nil, err
	}
	if bt == BranchingA {
		aOpts := TypeAOptions{
			CondonShortleyPhase: o.CondonShortleyPhase,
			IncludeNegativeM:    o.IncludeNegativeM,
		}

		return TypeA[complex128](th, nEnd, &aOpts)
	}

	alphaChild, betaChild, err := tree.Children(node)
	if err != nil {
		return nil, err
	}
	sAlpha, sBeta, err := tree.NonLeafCounts(node)
	if err != nil {
		return nil, err
	}
	mirrorAlpha, err := childIsAzimuthal(tree, alphaChild, o.IncludeNegativeM)
	if err != nil {
		return nil, err
	}
	mirrorBeta, err := childIsAzimuthal(tree, betaChild, o.IncludeNegativeM)
	if err != nil {
		return nil, err
	}

	var res *tensor.Dense[float64]
	switch bt {
	case BranchingB:
		bOpts := TypeBOptions{NegativeMBeta: mirrorBeta, Fill: o.Fill}
		res, err = TypeB(th, nEnd, tensor.Of(float64(sBeta)), &bOpts)
	case BranchingBPrime:
		bOpts := TypeBPrimeOptions{NegativeMAlpha: mirrorAlpha, Fill: o.Fill}
		res, err = TypeBPrime(th, nEnd, tensor.Of(float64(sAlpha)), &bOpts)
	case BranchingC:
		cOpts := TypeCOptions{NegativeMAlpha: mirrorAlpha, NegativeMBeta: mirrorBeta, Fill: o.Fill}
		res, err = TypeC(th, nEnd, tensor.Of(float64(sAlpha)), tensor.Of(float64(sBeta)), &cOpts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBranching, bt)
	}
	if err != nil {
		return nil, err
	}

	return tensor.MapTo(res, func(v float64) complex128 { return complex(v, 0) }), nil
}

// childIsAzimuthal reports whether the child axis must be mirrored:
// the child exists, is type A, and negative m is requested.
func childIsAzimuthal(tree Tree, child string, includeNegativeM bool) (bool, error) {
	if !includeNegativeM || child == "" {
		return false, nil
	}
	bt, err := tree.BranchingTypeOf(child)
	if err != nil {
		return false, err
	}

	return bt == BranchingA, nil
}
