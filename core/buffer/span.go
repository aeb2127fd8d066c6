// File: core/buffer/span.go
// Author: momentics <momentics@gmail.com>
//
// Span helpers: non-owning, bounds-limited views over a buffer's valid
// payload for code that reads or writes payload bytes without owning or
// copying the buffer.

package buffer

// MakeSpan returns a view over exactly b's valid payload. The view's
// length is frozen at creation and does not track later Append or
// Prepend calls; no bounds growth is possible through it.
//
// The view is valid only for the lifetime of b. Holding it past the
// buffer's release back to a pool is undetectable here and is the
// caller's responsibility.
func MakeSpan(b *ByteBuffer) []byte {
	return b.Data()
}

// MakeBitSpan returns a view over exactly b's valid payload bits,
// one bit value per byte. Same validity window as MakeSpan.
func MakeBitSpan(b *BitBuffer) []byte {
	return b.Bits()
}
