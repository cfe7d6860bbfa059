package lutconv

// Convolve runs the weight-pool quantized bit-serial-LUT convolution
// described by SPEC_FULL.md §4 over in (shaped inDims) producing out
// (shaped by the dimensions implied by inDims, filt and params), using pool and
// idxTab as the read-only weight representation and scratch as the
// caller-owned working buffers. cout is the number of output channels (also
// len(params.Mult)).
//
// Convolve performs no internal allocation: scratch must already be sized
// via NewScratch for (cout, precision, pool.L()).
func Convolve(
	out []int8,
	in []int8,
	inDims TensorDims,
	filt FilterDims,
	cout int,
	pool *Pool,
	idxTab *KernelIndex,
	scratch *Scratch,
	params Params,
) error {
	if pool == nil {
		return ErrNilPool
	}
	if idxTab == nil {
		return ErrNilIndexTable
	}
	if filt.Cin != inDims.C || filt.Cin%chanBlock != 0 {
		return ErrDimensionMismatch
	}
	if idxTab.blocks != filt.blocksTotal() {
		return ErrDimensionMismatch
	}
	if err := params.validate(cout); err != nil {
		return err
	}
	p := params.precision()
	l := pool.L()
	if scratch == nil || !scratch.fits(cout, p, l) {
		return ErrScratchTooSmall
	}
	if len(in) < inDims.size() {
		return ErrDimensionMismatch
	}

	hout := outDim(inDims.H, filt.KernelY, params.StrideY, params.PadY)
	wout := outDim(inDims.W, filt.KernelX, params.StrideX, params.PadX)
	if hout <= 0 || wout <= 0 {
		return nil
	}

	outDims := TensorDims{N: inDims.N, H: hout, W: wout, C: cout}
	if len(out) < outDims.size() {
		return ErrDimensionMismatch
	}
	blocksPerPos := filt.blocksPerPosition()

	useMemoized := params.ForceVariant == VariantMemoized ||
		(params.ForceVariant == VariantAuto && cout >= l)

	for n := 0; n < inDims.N; n++ {
		for oy := 0; oy < hout; oy++ {
			baseY := oy*params.StrideY - params.PadY
			kyLo, kyHi := clipRange(baseY, filt.KernelY, inDims.H)
			for ox := 0; ox < wout; ox++ {
				baseX := ox*params.StrideX - params.PadX
				kxLo, kxHi := clipRange(baseX, filt.KernelX, inDims.W)

				acc := scratch.acc[:cout]
				for i := range acc {
					acc[i] = 0
				}

				block := 0
				for ky := kyLo; ky < kyHi; ky++ {
					iy := baseY + ky
					for kx := kxLo; kx < kxHi; kx++ {
						ix := baseX + kx
						rowBase := inDims.offset(n, iy, ix, 0)
						for cb := 0; cb < blocksPerPos; cb++ {
							chanBase := rowBase + cb*chanBlock
							buildIndex(scratch.idx[:p], in, chanBase, params.ZeroPointIn, p)
							stageLUT(scratch.stage[:p*l], pool, scratch.idx[:p], p)
							if useMemoized {
								accumulateMemoized(acc, scratch.stage[:p*l], scratch.phys[:l], idxTab, block, cout, l, p)
							} else {
								accumulateDirect(acc, scratch.stage[:p*l], idxTab, block, cout, l, p)
							}
							block++
						}
					}
				}

				finalize(acc, params, cout)
				for oc := 0; oc < cout; oc++ {
					out[outDims.offset(n, oy, ox, oc)] = int8(acc[oc])
				}
			}
		}
	}
	return nil
}

// clipRange returns the [lo,hi) window of kernel positions whose mapped
// input coordinate base+k falls within [0, limit): padded positions are
// skipped entirely rather than treated as zero.
func clipRange(base, kernel, limit int) (int, int) {
	lo := 0
	if base < 0 {
		lo = -base
	}
	hi := kernel
	if base+kernel > limit {
		hi = limit - base
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func finalize(acc []int16, params Params, cout int) {
	for oc := 0; oc < cout; oc++ {
		v := int32(acc[oc])
		if params.Bias != nil {
			v += params.Bias[oc]
		}
		v = requantize(v, params.Mult[oc], params.Shift[oc])
		v += params.ZeroPointOut
		v = clamp32(v, params.ActMin, params.ActMax)
		acc[oc] = int16(v)
	}
}
