// Package lutconv implements a weight-pool quantized bit-serial-LUT int8
// convolution: filter weights are not stored per output channel but looked
// up in a shared pool of physical kernels, and input activations are
// consumed bit by bit against a precomputed lookup table.
package lutconv
