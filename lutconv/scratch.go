package lutconv

// Scratch holds the caller-owned working buffers for one Convolve call:
// the per-output-channel accumulator, the per-block bit masks, and the LUT
// staging area. Reusing a Scratch across calls avoids the per-call
// allocation the reference C implementation performs.
type Scratch struct {
	acc   []int16 // Cout
	idx   []uint8 // P
	stage []int8  // P*L
	phys  []int16 // L, memoized per-block physical results (variant ii)
}

// NewScratch allocates a Scratch sized for the given output-channel count,
// bit precision, and pool width.
func NewScratch(cout, p, l int) *Scratch {
	return &Scratch{
		acc:   make([]int16, cout),
		idx:   make([]uint8, p),
		stage: make([]int8, p*l),
		phys:  make([]int16, l),
	}
}

// fits reports whether the scratch buffers are large enough to serve a call
// with the given shapes, per the §5 sizing formulas.
func (s *Scratch) fits(cout, p, l int) bool {
	return len(s.acc) >= cout && len(s.idx) >= p && len(s.stage) >= p*l && len(s.phys) >= l
}
