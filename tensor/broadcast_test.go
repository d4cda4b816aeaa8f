package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ultrasphere/tensor"
)

// TestBroadcastShapes_TrailingAlignment verifies NumPy-style alignment
// from the right.
func TestBroadcastShapes_TrailingAlignment(t *testing.T) {
	out, err := tensor.BroadcastShapes(tensor.Shape{2, 3}, tensor.Shape{3})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, out)

	out, err = tensor.BroadcastShapes(tensor.Shape{2, 1}, tensor.Shape{1, 3})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, out)

	out, err = tensor.BroadcastShapes(tensor.Shape{}, tensor.Shape{4})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4}, out)
}

// TestBroadcastShapes_MismatchNamesShapes ensures incompatible shapes fail
// with ErrShapeMismatch and that the message carries both shapes.
func TestBroadcastShapes_MismatchNamesShapes(t *testing.T) {
	_, err := tensor.BroadcastShapes(tensor.Shape{2}, tensor.Shape{3})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "(2)")
	assert.Contains(t, err.Error(), "(3)")
}

// TestIsSameShape_IgnoresOnes verifies the broadcast-compatibility
// predicate.
func TestIsSameShape_IgnoresOnes(t *testing.T) {
	assert.True(t, tensor.IsSameShape(tensor.Shape{5, 1}, tensor.Shape{1, 7}))
	assert.False(t, tensor.IsSameShape(tensor.Shape{5}, tensor.Shape{7}))
}

// TestCheckSameShape_ErrorPropagation verifies the assertion form.
func TestCheckSameShape_ErrorPropagation(t *testing.T) {
	assert.NoError(t, tensor.CheckSameShape(tensor.Shape{2, 3}, tensor.Shape{3}))
	assert.ErrorIs(t, tensor.CheckSameShape(tensor.Shape{2}, tensor.Shape{3}), tensor.ErrShapeMismatch)
}

// TestZip_BroadcastAdd verifies elementwise addition over a [2,1] x [3]
// broadcast.
func TestZip_BroadcastAdd(t *testing.T) {
	a, err := tensor.FromSlice([]float64{10, 20}, 2, 1)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{1, 2, 3}, 3)
	require.NoError(t, err)

	out, err := tensor.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
	assert.Equal(t, []float64{11, 12, 13, 21, 22, 23}, out.Data())
}
