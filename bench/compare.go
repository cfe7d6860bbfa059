// Package bench characterizes the lookup-vs-MAC tradeoff the bit-serial
// LUT kernel exists to make, by comparing it against a naive dense float32
// convolution. This is a diagnostic/benchmark concern; it never sits on
// lutconv's hot path.
package bench

import (
	"github.com/chewxy/math32"
)

// DenseConv2D computes a plain dense float32 convolution over a
// channel-innermost NHWC input, used only as a throughput baseline against
// lutconv.Convolve. It performs no quantization and exists purely so
// benchmarks can report a MACs-per-second figure to compare against the
// LUT kernel's lookups-per-second figure.
func DenseConv2D(
	in []float32, n, h, w, cin int,
	weights []float32, cout, ky, kx int,
	strideY, strideX, padY, padX int,
) (out []float32, hout, wout int) {
	hout = (h+2*padY-ky)/strideY + 1
	wout = (w+2*padX-kx)/strideX + 1
	if hout <= 0 || wout <= 0 {
		return nil, 0, 0
	}
	out = make([]float32, n*hout*wout*cout)

	inOff := func(ni, yi, xi, ci int) int { return ((ni*h+yi)*w+xi)*cin + ci }
	outOff := func(ni, yi, xi, ci int) int { return ((ni*hout+yi)*wout+xi)*cout + ci }
	wOff := func(oc, fy, fx, ci int) int { return ((oc*ky+fy)*kx+fx)*cin + ci }

	for ni := 0; ni < n; ni++ {
		for oy := 0; oy < hout; oy++ {
			baseY := oy*strideY - padY
			for ox := 0; ox < wout; ox++ {
				baseX := ox*strideX - padX
				for oc := 0; oc < cout; oc++ {
					var sum float32
					for fy := 0; fy < ky; fy++ {
						iy := baseY + fy
						if iy < 0 || iy >= h {
							continue
						}
						for fx := 0; fx < kx; fx++ {
							ix := baseX + fx
							if ix < 0 || ix >= w {
								continue
							}
							for ci := 0; ci < cin; ci++ {
								a := in[inOff(ni, iy, ix, ci)]
								wv := weights[wOff(oc, fy, fx, ci)]
								sum += a * wv
							}
						}
					}
					out[outOff(ni, oy, ox, oc)] = sum
				}
			}
		}
	}
	return out, hout, wout
}

// MACs returns the multiply-accumulate count DenseConv2D performs for the
// given shapes (Cout*8 per 8-channel block), the natural unit to compare
// against Lookups' pool-row-read count (P per block, shared across Cout).
func MACs(n, hout, wout, cout, ky, kx, cin int) int64 {
	return int64(n) * int64(hout) * int64(wout) * int64(cout) * int64(ky) * int64(kx) * int64(cin)
}

// Lookups returns the LUT-read count lutconv.Convolve performs for the
// given shapes: one pool row read (L bytes) per bit per block, shared
// across all Cout output channels.
func Lookups(n, hout, wout, ky, kx, cin, p int) int64 {
	blocksPerPos := cin / 8
	return int64(n) * int64(hout) * int64(wout) * int64(ky) * int64(kx) * int64(blocksPerPos) * int64(p)
}

// RMSError returns the root-mean-square difference between a dequantized
// lutconv output and a DenseConv2D baseline, the metric used to sanity
// check that a chosen (mult, shift, zero-point) contract approximates the
// float reference within tolerance before it is burned into a device image.
func RMSError(dequantized, reference []float32) float32 {
	if len(dequantized) != len(reference) || len(dequantized) == 0 {
		return 0
	}
	var sum float32
	for i := range dequantized {
		d := dequantized[i] - reference[i]
		sum += d * d
	}
	mean := sum / float32(len(dequantized))
	return math32.Sqrt(mean)
}

// Dequantize converts an int8 tensor back to float32 using the scale and
// zero point that produced it, so RMSError can compare against the float
// dense reference.
func Dequantize(vals []int8, scale float32, zeroPoint int32) []float32 {
	out := make([]float32, len(vals))
	for i, v := range vals {
		out[i] = scale * float32(int32(v)-zeroPoint)
	}
	return out
}
