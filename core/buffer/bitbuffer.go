// File: core/buffer/bitbuffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bit-granular sibling of ByteBuffer for fixed-shape bit-field
// payloads. Stores one unpacked bit per backing byte, the usual
// PHY-layer convention, and is deliberately narrower than the byte
// variant: construction, bounded copy, clear and headroom query only.

package buffer

// BitBuffer is a fixed-capacity buffer whose length is counted in bits.
type BitBuffer struct {
	storage [MaxBufferSizeBits]byte
	start   int
	bits    int
}

// NewBitBuffer returns an empty bit buffer with default headroom.
func NewBitBuffer() *BitBuffer {
	b := &BitBuffer{}
	b.Clear()
	return b
}

// Clear resets the buffer to empty with default headroom.
func (b *BitBuffer) Clear() {
	b.start = DefaultHeaderOffset
	b.bits = 0
}

// Size returns the number of valid payload bits.
func (b *BitBuffer) Size() int { return b.bits }

// Headroom returns the bit positions reserved in front of the payload.
func (b *BitBuffer) Headroom() int { return b.start }

// Bits returns a view over the valid payload, one bit value per byte.
func (b *BitBuffer) Bits() []byte {
	return b.storage[b.start : b.start+b.bits]
}

// Resize sets the payload length to n bits so callers can fill the
// returned Bits view in place. Panics when n does not fit.
func (b *BitBuffer) Resize(n int) {
	if n < 0 || n > MaxBufferSizeBits-b.start {
		panic("buffer: bit size exceeds fixed backing capacity")
	}
	b.bits = n
}

// CopyFrom deep-copies src's payload bits at a fresh default headroom.
// Self-copy is a no-op.
func (b *BitBuffer) CopyFrom(src *BitBuffer) {
	if b == src {
		return
	}
	b.start = DefaultHeaderOffset
	b.bits = src.bits
	copy(b.storage[b.start:], src.Bits())
}
