package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenseConv2DIdentityKernel(t *testing.T) {
	in := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	weights := []float32{1, 0, 0, 0, 0, 0, 0, 0}
	out, hout, wout := DenseConv2D(in, 1, 1, 1, 8, weights, 1, 1, 1, 1, 1, 0, 0)
	assert.Equal(t, 1, hout)
	assert.Equal(t, 1, wout)
	assert.Equal(t, []float32{1}, out)
}

func TestDenseConv2DEmptyOutput(t *testing.T) {
	in := make([]float32, 8)
	weights := make([]float32, 8)
	out, hout, wout := DenseConv2D(in, 1, 1, 1, 8, weights, 1, 3, 3, 1, 1, 0, 0)
	assert.Nil(t, out)
	assert.Equal(t, 0, hout)
	assert.Equal(t, 0, wout)
}

func TestMACsAndLookups(t *testing.T) {
	assert.Equal(t, int64(1*2*2*4*3*3*16), MACs(1, 2, 2, 4, 3, 3, 16))
	assert.Equal(t, int64(1*2*2*3*3*2*5), Lookups(1, 2, 2, 3, 3, 16, 5))
}

func TestDequantizeAndRMSError(t *testing.T) {
	q := []int8{0, 10, -10}
	f := Dequantize(q, 0.5, 0)
	assert.Equal(t, []float32{0, 5, -5}, f)

	ref := []float32{0, 5, -5}
	assert.Equal(t, float32(0), RMSError(f, ref))

	ref2 := []float32{1, 5, -5}
	assert.Greater(t, RMSError(f, ref2), float32(0))
}
