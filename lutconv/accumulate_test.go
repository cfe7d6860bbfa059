package lutconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulateDirectMatchesMemoized(t *testing.T) {
	const l = 4
	const p = 3
	const cout = 8

	raw := make([]int8, 256*l)
	for m := 0; m < 256; m++ {
		for ph := 0; ph < l; ph++ {
			raw[m*l+ph] = int8((m + ph*3) % 11 - 5)
		}
	}
	pool, err := NewPool(raw, l)
	require.NoError(t, err)

	rawIdx := make([]uint8, cout)
	for oc := range rawIdx {
		rawIdx[oc] = uint8(oc % l)
	}
	idxTab, err := NewKernelIndex(rawIdx, 1, cout, l)
	require.NoError(t, err)

	idx := []uint8{13, 200, 77}
	stage := make([]int8, p*l)
	stageLUT(stage, pool, idx, p)

	accDirect := make([]int16, cout)
	accumulateDirect(accDirect, stage, idxTab, 0, cout, l, p)

	accMemo := make([]int16, cout)
	phys := make([]int16, l)
	accumulateMemoized(accMemo, stage, phys, idxTab, 0, cout, l, p)

	assert.Equal(t, accDirect, accMemo)
}
