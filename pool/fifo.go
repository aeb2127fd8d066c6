// File: pool/fifo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Grow-on-demand reuse pool over a FIFO free list. Unlike BufferPool
// it never exhausts: a miss falls through to the factory. Used for bit
// buffers, whose population is small and bursty rather than bounded.

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-pdu/api"
	"github.com/momentics/hioload-pdu/core/buffer"
)

// FIFOPool recycles objects through a mutex-guarded FIFO queue.
type FIFOPool[T any] struct {
	mu      sync.Mutex
	free    *queue.Queue
	factory func() T
	reset   func(T)

	acquired int64
	released int64
}

var _ api.Pool[*buffer.BitBuffer] = (*FIFOPool[*buffer.BitBuffer])(nil)

// NewFIFOPool builds a pool producing objects with factory and
// recycling them through reset. reset may be nil.
func NewFIFOPool[T any](factory func() T, reset func(T)) *FIFOPool[T] {
	return &FIFOPool[T]{
		free:    queue.New(),
		factory: factory,
		reset:   reset,
	}
}

// Acquire returns a recycled or freshly built object. Never fails.
func (p *FIFOPool[T]) Acquire() (T, error) {
	p.mu.Lock()
	p.acquired++
	if p.free.Length() > 0 {
		v := p.free.Remove().(T)
		p.mu.Unlock()
		return v, nil
	}
	p.mu.Unlock()
	return p.factory(), nil
}

// TryAcquire mirrors Acquire; ok is always true for this pool type.
func (p *FIFOPool[T]) TryAcquire() (T, bool) {
	v, _ := p.Acquire()
	return v, true
}

// Release resets the object and queues it for reuse.
func (p *FIFOPool[T]) Release(v T) {
	if p.reset != nil {
		p.reset(v)
	}
	p.mu.Lock()
	p.released++
	p.free.Add(v)
	p.mu.Unlock()
}

// Stats exposes allocation accounting. Capacity is zero: the pool
// grows on demand.
func (p *FIFOPool[T]) Stats() api.PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return api.PoolStats{
		TotalAcquired: p.acquired,
		TotalReleased: p.released,
		InUse:         p.acquired - p.released,
	}
}
