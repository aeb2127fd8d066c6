// File: core/buffer/sizes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Backing-storage size configuration. These are fixed constants, not
// runtime-negotiated: capacity is sized for the largest transport block
// a radio-layer pipeline produces, and the header offset reserves
// default headroom for in-place header prepending.

package buffer

const (
	// MaxBufferSizeBytes is the fixed backing capacity of a ByteBuffer.
	MaxBufferSizeBytes = 12756

	// MaxBufferSizeBits is the fixed backing capacity of a BitBuffer,
	// one unpacked bit per backing byte.
	MaxBufferSizeBits = MaxBufferSizeBytes * 8

	// DefaultHeaderOffset is the headroom reserved in front of the
	// payload after construction or Clear.
	DefaultHeaderOffset = 1020
)

// Vector-instruction widths consumed by allocation alignment. Pure
// configuration, no behavior of its own.
const (
	// SIMDWidthBytes is the number of packed bytes in one AVX-512 lane.
	SIMDWidthBytes = 64

	// SIMDWidthLog2 is log2(SIMDWidthBytes).
	SIMDWidthLog2 = 6
)
