// File: core/buffer/bytebuffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity byte buffer with headroom bookkeeping for in-place
// header prepend and trailer append.
//
// Invariant maintained by every mutating operation:
//
//	0 <= start && start+length <= MaxBufferSizeBytes
//
// Capacity violations are programming-contract violations and panic at
// the call site; lengths are never silently clamped.

package buffer

import "time"

// Metadata travels with the payload through buffer copies: an opaque
// sequence number owned by upper layers plus the latency tracker.
type Metadata struct {
	Seq uint32
	TP  LatencyTracker
}

// ByteBuffer is a fixed-capacity PDU buffer. The valid payload occupies
// storage[start : start+length]; bytes before start are headroom, bytes
// after are tailroom. The zero value is NOT ready for use: obtain
// instances via New/NewSized/NewFilled or a pool, or call Clear first.
type ByteBuffer struct {
	storage [MaxBufferSizeBytes]byte
	start   int
	length  int

	// Meta is copied verbatim by CopyFrom, including the latency
	// timestamp: a copy represents the same original production time.
	Meta Metadata
}

// New returns an empty buffer with the default headroom reserved.
func New() *ByteBuffer {
	b := &ByteBuffer{}
	b.Clear()
	return b
}

// NewSized returns a buffer whose payload length is already n. The
// payload content is unspecified; callers fill it in place. Panics if n
// does not fit behind the default headroom.
func NewSized(n int) *ByteBuffer {
	b := New()
	if n < 0 || n > b.Tailroom() {
		panic("buffer: size hint exceeds fixed backing capacity")
	}
	b.length = n
	return b
}

// NewFilled returns a buffer of length n with every payload byte set to val.
func NewFilled(n int, val byte) *ByteBuffer {
	b := NewSized(n)
	data := b.Data()
	for i := range data {
		data[i] = val
	}
	return b
}

// Clear resets the buffer to empty with default headroom and zeroed
// metadata. Backing storage is left as-is; consumers must never read
// beyond Size().
func (b *ByteBuffer) Clear() {
	b.start = DefaultHeaderOffset
	b.length = 0
	b.Meta = Metadata{}
}

// Size returns the number of valid payload bytes.
func (b *ByteBuffer) Size() int { return b.length }

// Headroom returns the bytes reserved in front of the payload.
func (b *ByteBuffer) Headroom() int { return b.start }

// Tailroom returns the bytes left behind the payload.
func (b *ByteBuffer) Tailroom() int { return MaxBufferSizeBytes - b.start - b.length }

// Data returns a view over exactly the valid payload, never the
// headroom or tailroom bytes. The view's length is frozen at the call;
// it does not track later Append or Prepend.
func (b *ByteBuffer) Data() []byte {
	return b.storage[b.start : b.start+b.length]
}

// Append copies p behind the current payload and grows the length.
// The caller must have checked Tailroom: overflow is a contract
// violation and panics rather than corrupting payload semantics.
func (b *ByteBuffer) Append(p []byte) {
	if len(p) > b.Tailroom() {
		panic("buffer: append exceeds tailroom")
	}
	copy(b.storage[b.start+b.length:], p)
	b.length += len(p)
}

// Prepend copies p into the headroom directly in front of the payload
// and moves the payload start back. Panics when p exceeds Headroom.
func (b *ByteBuffer) Prepend(p []byte) {
	if len(p) > b.Headroom() {
		panic("buffer: prepend exceeds headroom")
	}
	b.start -= len(p)
	copy(b.storage[b.start:], p)
	b.length += len(p)
}

// CopyFrom deep-copies exactly src's payload into this buffer at a
// fresh default headroom, and copies metadata verbatim. Self-copy is a
// no-op. Only Size() bytes are copied regardless of src's headroom.
// A payload grown into the headroom may not fit behind a fresh default
// headroom; that is a contract violation and panics, never truncates.
func (b *ByteBuffer) CopyFrom(src *ByteBuffer) {
	if b == src {
		return
	}
	if src.length > MaxBufferSizeBytes-DefaultHeaderOffset {
		panic("buffer: copy source exceeds capacity behind default headroom")
	}
	b.start = DefaultHeaderOffset
	b.length = src.length
	b.Meta = src.Meta
	copy(b.storage[b.start:], src.Data())
}

// SetTimestamp stamps the payload with the current production time.
func (b *ByteBuffer) SetTimestamp() { b.Meta.TP.SetTimestamp() }

// SetTimestampAt stamps the payload with an explicit production time.
func (b *ByteBuffer) SetTimestampAt(tp time.Time) { b.Meta.TP.SetTimestampAt(tp) }

// Timestamp returns the stored production time, if any.
func (b *ByteBuffer) Timestamp() time.Time { return b.Meta.TP.Timestamp() }

// Latency returns the elapsed time since the payload was stamped,
// or zero when it never was.
func (b *ByteBuffer) Latency() time.Duration { return b.Meta.TP.Latency() }
