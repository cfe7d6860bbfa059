package lutconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageLUT(t *testing.T) {
	raw := make([]int8, 256*4)
	for m := 0; m < 256; m++ {
		for p := 0; p < 4; p++ {
			raw[m*4+p] = int8(m%7 - p)
		}
	}
	pool, err := NewPool(raw, 4)
	require.NoError(t, err)

	idx := []uint8{0, 5, 255}
	stage := make([]int8, 3*4)
	stageLUT(stage, pool, idx, 3)

	assert.Equal(t, pool.row(0), stage[0:4])
	assert.Equal(t, pool.row(5), stage[4:8])
	assert.Equal(t, pool.row(255), stage[8:12])
}
