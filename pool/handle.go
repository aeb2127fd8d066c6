// File: pool/handle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Move-only owning handle over a pooled buffer. Ownership transfers
// with the handle value; the previous copy must not be used after a
// transfer. Release on the same handle value is idempotent.

package pool

import "github.com/momentics/hioload-pdu/core/buffer"

// UniqueBuffer owns one pooled ByteBuffer. The zero value is the
// invalid (empty) handle returned by TryAcquire on exhaustion.
type UniqueBuffer struct {
	b *buffer.ByteBuffer
	p *BufferPool
}

// Valid reports whether the handle owns a buffer.
func (u UniqueBuffer) Valid() bool { return u.b != nil }

// Get returns the owned buffer, or nil for the invalid handle.
func (u UniqueBuffer) Get() *buffer.ByteBuffer { return u.b }

// Span returns a non-owning view over the owned buffer's valid
// payload. Valid only until the handle is released.
func (u UniqueBuffer) Span() []byte {
	if u.b == nil {
		return nil
	}
	return buffer.MakeSpan(u.b)
}

// Release returns the buffer to its pool and invalidates the handle.
// Calling Release again on the same handle is a no-op.
func (u *UniqueBuffer) Release() {
	if u.b == nil {
		return
	}
	u.p.release(u.b)
	u.b = nil
	u.p = nil
}
