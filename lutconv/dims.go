package lutconv

// TensorDims describes a channel-innermost NHWC int8 tensor: element
// (n,y,x,c) lives at offset ((n*H+y)*W+x)*C+c.
type TensorDims struct {
	N, H, W, C int
}

func (d TensorDims) size() int { return d.N * d.H * d.W * d.C }

func (d TensorDims) offset(n, y, x, c int) int {
	return ((n*d.H+y)*d.W+x)*d.C + c
}

// FilterDims describes the spatial extent of the filter plus the input
// channel count it consumes; Cout is carried separately since it is not a
// dimension of the filter itself but of the index table and the output.
type FilterDims struct {
	KernelY, KernelX, Cin int
}

func (f FilterDims) blocksPerPosition() int {
	return f.Cin / chanBlock
}

// blocksTotal is the number of 8-channel blocks a filter application
// enumerates when no kernel position is clipped, and so the number of block
// rows the index table holds. Clipped border positions enumerate fewer
// blocks and use only the leading rows.
func (f FilterDims) blocksTotal() int {
	return f.KernelY * f.KernelX * f.blocksPerPosition()
}

// Spatial carries stride/padding parameters for the convolution driver.
type Spatial struct {
	StrideY, StrideX int
	PadY, PadX       int
}

func outDim(in, kernel, stride, pad int) int {
	return (in+2*pad-kernel)/stride + 1
}
