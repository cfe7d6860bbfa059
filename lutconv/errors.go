package lutconv

import "errors"

var (
	// ErrDimensionMismatch is returned when tensor or filter dimensions
	// violate the operator's shape contract (e.g. Cin not a multiple of
	// the channel block width).
	ErrDimensionMismatch = errors.New("lutconv: dimension mismatch")
	// ErrNilPool is returned when a Convolve call is given a nil weight
	// pool, or when NewPool is given an empty table.
	ErrNilPool = errors.New("lutconv: nil pool")
	// ErrNilIndexTable is returned when a Convolve call is given a nil
	// logical-to-physical index table, or when NewKernelIndex is given an
	// empty one.
	ErrNilIndexTable = errors.New("lutconv: nil index table")
	// ErrScratchTooSmall is returned when the caller-provided Scratch
	// cannot hold the accumulator, index, or staging buffers required
	// by the requested shapes.
	ErrScratchTooSmall = errors.New("lutconv: scratch too small")
	// ErrUnsupportedPrecision is returned when the requested bit-serial
	// precision P does not fit an 8-bit activation.
	ErrUnsupportedPrecision = errors.New("lutconv: unsupported precision")
	// ErrIndexOutOfRange is returned by NewKernelIndex when kernel_idx
	// contains a physical id outside [0, L). The check runs in every
	// build.
	ErrIndexOutOfRange = errors.New("lutconv: physical kernel index out of range")
)
