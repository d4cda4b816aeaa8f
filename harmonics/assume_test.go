package harmonics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ultrasphere/harmonics"
	"github.com/katalvlaran/ultrasphere/tensor"
)

// TestNDimHarmonics checks the quantum-number arity per branching type and
// the closed-enumeration guard.
func TestNDimHarmonics(t *testing.T) {
	cases := []struct {
		bt   harmonics.BranchingType
		want int
	}{
		{harmonics.BranchingA, 1},
		{harmonics.BranchingB, 2},
		{harmonics.BranchingBPrime, 2},
		{harmonics.BranchingC, 3},
	}
	for _, c := range cases {
		got, err := harmonics.NDimHarmonics(c.bt)
		require.NoError(t, err, c.bt)
		assert.Equal(t, c.want, got, c.bt)
	}

	_, err := harmonics.NDimHarmonics(harmonics.BranchingType(42))
	assert.ErrorIs(t, err, harmonics.ErrUnknownBranching)
}

// TestExpansionParams_RoundTrip verifies that the inference recovers
// (nEnd, includeNegativeM) from axis extents produced by the evaluators:
// a mirrored axis of extent 2·nEnd−1 alongside an unmirrored one of
// extent nEnd flips the flag, all-equal extents do not.
func TestExpansionParams_RoundTrip(t *testing.T) {
	tree := &harmonics.StaticTree{
		Order: []string{"theta", "phi"},
		Nodes: map[string]harmonics.StaticNode{
			"theta": {Type: harmonics.BranchingB, Beta: "phi"},
			"phi":   {Type: harmonics.BranchingA},
		},
	}

	const nEnd = 3
	mirrored, err := tensor.New[complex128](2*nEnd-1, nEnd)
	require.NoError(t, err)
	signed, err := tensor.New[complex128](2*nEnd - 1)
	require.NoError(t, err)

	got, neg, err := harmonics.ExpansionParams(tree, map[string]*tensor.Dense[complex128]{
		"theta": mirrored,
		"phi":   signed,
	})
	require.NoError(t, err)
	assert.Equal(t, nEnd, got)
	assert.True(t, neg, "a mirrored trailing axis next to an unmirrored one implies negative m")

	plain, err := tensor.New[complex128](nEnd, nEnd)
	require.NoError(t, err)
	square, err := tensor.New[complex128](nEnd)
	require.NoError(t, err)

	got, neg, err = harmonics.ExpansionParams(tree, map[string]*tensor.Dense[complex128]{
		"theta": plain,
		"phi":   square,
	})
	require.NoError(t, err)
	// All sizes equal s: nEnd = (s+1)/2 and every axis differs from it,
	// so the flag flips — extent 2·nEnd−1 everywhere means a fully signed
	// ladder.
	assert.Equal(t, 2, got)
	assert.True(t, neg)
}

// TestExpansionParams_UniformSigned verifies the all-mirrored case: every
// extent 2·nEnd−1 recovers nEnd with the flag cleared only when sizes
// equal nEnd itself.
func TestExpansionParams_UniformSigned(t *testing.T) {
	tree := &harmonics.StaticTree{
		Order: []string{"phi"},
		Nodes: map[string]harmonics.StaticNode{
			"phi": {Type: harmonics.BranchingA},
		},
	}

	// Extent 1 is both nEnd=1 and 2·nEnd−1: the unmirrored reading wins.
	one, err := tensor.New[complex128](1)
	require.NoError(t, err)
	got, neg, err := harmonics.ExpansionParams(tree, map[string]*tensor.Dense[complex128]{"phi": one})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.False(t, neg)

	five, err := tensor.New[complex128](5)
	require.NoError(t, err)
	got, neg, err = harmonics.ExpansionParams(tree, map[string]*tensor.Dense[complex128]{"phi": five})
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.True(t, neg)
}

// TestExpansionParams_Errors covers the contract failures: nil tree,
// missing node, rank-0 coefficients, and the empty-tree degenerate case.
func TestExpansionParams_Errors(t *testing.T) {
	_, _, err := harmonics.ExpansionParams[complex128](nil, nil)
	assert.ErrorIs(t, err, harmonics.ErrNilCoordinates)

	empty := &harmonics.StaticTree{}
	nEnd, neg, err := harmonics.ExpansionParams[complex128](empty, nil)
	require.NoError(t, err)
	assert.Zero(t, nEnd)
	assert.False(t, neg)

	tree := &harmonics.StaticTree{
		Order: []string{"phi"},
		Nodes: map[string]harmonics.StaticNode{"phi": {Type: harmonics.BranchingA}},
	}
	_, _, err = harmonics.ExpansionParams(tree, map[string]*tensor.Dense[complex128]{})
	assert.ErrorIs(t, err, harmonics.ErrMissingNode)

	scalar := tensor.Of(complex(1, 0))
	_, _, err = harmonics.ExpansionParams(tree, map[string]*tensor.Dense[complex128]{"phi": scalar})
	assert.ErrorIs(t, err, harmonics.ErrBadExpansion)
}

// TestExpansionParamsFlat verifies inference from one concatenated array
// whose trailing axes follow the canonical node order.
func TestExpansionParamsFlat(t *testing.T) {
	tree := &harmonics.StaticTree{
		Order: []string{"theta", "phi"},
		Nodes: map[string]harmonics.StaticNode{
			"theta": {Type: harmonics.BranchingB, Beta: "phi"},
			"phi":   {Type: harmonics.BranchingA},
		},
	}

	// Batch axis 4 is ignored; trailing (3, 5) maps to the two nodes.
	arr, err := tensor.New[complex128](4, 3, 5)
	require.NoError(t, err)
	nEnd, neg, err := harmonics.ExpansionParamsFlat(tree, arr)
	require.NoError(t, err)
	assert.Equal(t, 3, nEnd)
	assert.True(t, neg)

	short, err := tensor.New[complex128](3)
	require.NoError(t, err)
	_, _, err = harmonics.ExpansionParamsFlat(tree, short)
	assert.ErrorIs(t, err, harmonics.ErrBadExpansion)

	_, _, err = harmonics.ExpansionParamsFlat[complex128](tree, nil)
	assert.ErrorIs(t, err, harmonics.ErrBadExpansion)

	_, _, err = harmonics.ExpansionParamsFlat[complex128](nil, arr)
	assert.ErrorIs(t, err, harmonics.ErrNilCoordinates)
}
