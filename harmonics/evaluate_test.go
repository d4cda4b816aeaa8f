package harmonics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ultrasphere/harmonics"
	"github.com/katalvlaran/ultrasphere/tensor"
)

// threeSphereTree models the canonical S³ decomposition: a type-B root
// whose β subtree is a single azimuthal node.
func threeSphereTree() *harmonics.StaticTree {
	return &harmonics.StaticTree{
		Order: []string{"theta", "phi"},
		Nodes: map[string]harmonics.StaticNode{
			"theta": {Type: harmonics.BranchingB, Beta: "phi"},
			"phi":   {Type: harmonics.BranchingA},
		},
	}
}

// TestEvaluateNodes_MatchesDirectCalls verifies the driver against direct
// evaluator calls: the type-A node must equal TypeA, the type-B node must
// equal TypeB with the β axis mirrored (its child is azimuthal and
// negative m is on by default), promoted to complex128.
func TestEvaluateNodes_MatchesDirectCalls(t *testing.T) {
	tree := threeSphereTree()
	const nEnd = 3
	angles := map[string]*tensor.Dense[float64]{
		"theta": tensor.Of(0.7),
		"phi":   tensor.Of(1.1),
	}

	out, err := harmonics.EvaluateNodes(context.Background(), tree, angles, nEnd, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)

	aOpts := harmonics.DefaultTypeAOptions()
	wantPhi, err := harmonics.TypeA[complex128](angles["phi"], nEnd, &aOpts)
	require.NoError(t, err)
	require.Equal(t, wantPhi.Shape(), out["phi"].Shape())
	assert.Equal(t, wantPhi.Data(), out["phi"].Data())

	bOpts := harmonics.TypeBOptions{NegativeMBeta: true}
	wantTheta, err := harmonics.TypeB(angles["theta"], nEnd, tensor.Of(0.0), &bOpts)
	require.NoError(t, err)
	require.Equal(t, wantTheta.Shape(), out["theta"].Shape())
	for i, v := range out["theta"].Data() {
		assert.Equal(t, complex(wantTheta.Data()[i], 0), v, "index %d", i)
	}
}

// TestEvaluateNodes_NoNegativeM verifies that disabling negative m also
// disables the child-axis mirroring on the parent.
func TestEvaluateNodes_NoNegativeM(t *testing.T) {
	tree := threeSphereTree()
	const nEnd = 3
	angles := map[string]*tensor.Dense[float64]{
		"theta": tensor.Of(0.7),
		"phi":   tensor.Of(1.1),
	}

	out, err := harmonics.EvaluateNodes(context.Background(), tree, angles, nEnd, &harmonics.EvalOptions{})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{nEnd}, out["phi"].Shape())
	assert.Equal(t, tensor.Shape{nEnd, nEnd}, out["theta"].Shape())
}

// TestEvaluateNodes_TypeCNode verifies dispatch of a type-C root with two
// azimuthal children: both leading axes mirror.
func TestEvaluateNodes_TypeCNode(t *testing.T) {
	tree := &harmonics.StaticTree{
		Order: []string{"root", "phiA", "phiB"},
		Nodes: map[string]harmonics.StaticNode{
			"root": {Type: harmonics.BranchingC, Alpha: "phiA", Beta: "phiB"},
			"phiA": {Type: harmonics.BranchingA},
			"phiB": {Type: harmonics.BranchingA},
		},
	}
	const nEnd = 2
	angles := map[string]*tensor.Dense[float64]{
		"root": tensor.Of(0.4),
		"phiA": tensor.Of(0.9),
		"phiB": tensor.Of(1.3),
	}

	out, err := harmonics.EvaluateNodes(context.Background(), tree, angles, nEnd, nil)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2*nEnd - 1, 2*nEnd - 1, nEnd}, out["root"].Shape())
}

// TestEvaluateNodes_Errors covers the driver's failure modes: nil tree,
// negative degree, a node without its angle batch, and context
// cancellation.
func TestEvaluateNodes_Errors(t *testing.T) {
	tree := threeSphereTree()
	angles := map[string]*tensor.Dense[float64]{
		"theta": tensor.Of(0.7),
		"phi":   tensor.Of(1.1),
	}

	_, err := harmonics.EvaluateNodes(context.Background(), nil, angles, 2, nil)
	assert.ErrorIs(t, err, harmonics.ErrNilCoordinates)

	_, err = harmonics.EvaluateNodes(context.Background(), tree, angles, -1, nil)
	assert.ErrorIs(t, err, harmonics.ErrBadDegree)

	_, err = harmonics.EvaluateNodes(context.Background(), tree, map[string]*tensor.Dense[float64]{
		"theta": tensor.Of(0.7),
	}, 2, nil)
	assert.ErrorIs(t, err, harmonics.ErrMissingAngle)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = harmonics.EvaluateNodes(ctx, tree, angles, 2, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
