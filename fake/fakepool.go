// Package fake
// Author: momentics <momentics@gmail.com>
//
// Heap-backed fake pool for testing pool consumers without an arena.

package fake

import (
	"sync"

	"github.com/momentics/hioload-pdu/api"
	"github.com/momentics/hioload-pdu/core/buffer"
)

// BufferPool hands out heap-allocated buffers and counts traffic. It
// can be forced into the exhausted state to exercise failure paths.
type BufferPool struct {
	mu        sync.Mutex
	acquired  int64
	released  int64
	Exhausted bool
}

// NewBufferPool creates an empty fake pool.
func NewBufferPool() *BufferPool {
	return &BufferPool{}
}

// Acquire returns a fresh buffer, or api.ErrPoolExhausted when the
// fake is in the exhausted state.
func (p *BufferPool) Acquire() (*buffer.ByteBuffer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Exhausted {
		return nil, api.ErrPoolExhausted
	}
	p.acquired++
	return buffer.New(), nil
}

// TryAcquire yields (nil, false) in the exhausted state.
func (p *BufferPool) TryAcquire() (*buffer.ByteBuffer, bool) {
	b, err := p.Acquire()
	return b, err == nil
}

// Release counts the return; the buffer goes to the GC.
func (p *BufferPool) Release(_ *buffer.ByteBuffer) {
	p.mu.Lock()
	p.released++
	p.mu.Unlock()
}

// Stats exposes the traffic counters.
func (p *BufferPool) Stats() api.PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return api.PoolStats{
		TotalAcquired: p.acquired,
		TotalReleased: p.released,
		InUse:         p.acquired - p.released,
	}
}

var _ api.Pool[*buffer.ByteBuffer] = (*BufferPool)(nil)
