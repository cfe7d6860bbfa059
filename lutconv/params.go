package lutconv

// Precision is the bit-serial depth P of the activation decomposition.
// P=5 matches the reference pool geometry; implementations MAY use a
// different P provided Accumulator width bounds hold (§3 invariant v).
const Precision = 5

// Params carries the per-call quantization and spatial contract: padding,
// stride, zero points, activation clamp, and the per-output-channel
// requantization multipliers/shifts. Bias is optional (nil means no bias).
type Params struct {
	Spatial

	Precision int // bit-serial depth P; zero means use Precision (5)

	ZeroPointIn  int32
	ZeroPointOut int32
	ActMin       int32
	ActMax       int32

	Mult  []int32 // per output channel, Q31 fixed-point multiplier
	Shift []int32 // per output channel, arm_nn_requantize-style shift
	Bias  []int32 // per output channel, optional

	// ForceVariant pins the accumulate strategy for testing; zero value
	// means auto-select per §4.3 (memoized when Cout >= L).
	ForceVariant Variant
}

// Variant selects which Accumulator strategy Convolve uses.
type Variant int

const (
	// VariantAuto selects Direct or Memoized based on Cout vs L.
	VariantAuto Variant = iota
	VariantDirect
	VariantMemoized
)

func (p Params) precision() int {
	if p.Precision == 0 {
		return Precision
	}
	return p.Precision
}

func (p Params) validate(cout int) error {
	prec := p.precision()
	if prec <= 0 || prec > 8 {
		return ErrUnsupportedPrecision
	}
	if len(p.Mult) != cout || len(p.Shift) != cout {
		return ErrDimensionMismatch
	}
	if p.Bias != nil && len(p.Bias) != cout {
		return ErrDimensionMismatch
	}
	if p.StrideY <= 0 || p.StrideX <= 0 {
		return ErrDimensionMismatch
	}
	return nil
}
