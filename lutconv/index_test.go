package lutconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKernelIndexValidation(t *testing.T) {
	tests := []struct {
		name    string
		raw     []uint8
		blocks  int
		cout    int
		l       int
		wantErr error
	}{
		{name: "nil raw rejected", raw: nil, blocks: 1, cout: 1, l: 4, wantErr: ErrNilIndexTable},
		{name: "length mismatch rejected", raw: []uint8{0, 1}, blocks: 2, cout: 2, l: 4, wantErr: ErrDimensionMismatch},
		{name: "out of range physical id rejected", raw: []uint8{0, 4}, blocks: 1, cout: 2, l: 4, wantErr: ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKernelIndex(tt.raw, tt.blocks, tt.cout, tt.l)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestKernelIndexPhysical(t *testing.T) {
	idxTab, err := NewKernelIndex([]uint8{1, 2, 3, 4}, 2, 2, 8)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), idxTab.physical(0, 0))
	assert.Equal(t, uint8(4), idxTab.physical(1, 1))
}
