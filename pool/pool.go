// File: pool/pool.go
// Package pool implements arena-backed fixed-slot buffer pooling.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"errors"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"

	"github.com/momentics/hioload-pdu/api"
	"github.com/momentics/hioload-pdu/core/buffer"
	"github.com/momentics/hioload-pdu/internal/concurrency"
)

// DefaultCapacity is the slot count used by the process-wide pool.
const DefaultCapacity = 4096

// BufferPool owns a fixed arena of ByteBuffer slots. Acquire/Release
// move slot indices through a lock-free ring; the buffers never carry
// pool linkage themselves.
type BufferPool struct {
	slots []buffer.ByteBuffer
	inUse []atomic.Bool
	free  *concurrency.Ring[int32]
	arena arena

	acquired atomic.Int64
	released atomic.Int64
	closed   atomic.Bool

	log *zap.Logger
}

var _ api.Pool[UniqueBuffer] = (*BufferPool)(nil)

// NewBufferPool builds a pool of capacity preallocated buffer slots.
func NewBufferPool(capacity int, opts ...Option) (*BufferPool, error) {
	if capacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "pool capacity must be positive").
			WithContext("capacity", capacity)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a, slots, err := newArena(capacity, o.hugepages)
	if err != nil {
		return nil, err
	}

	p := &BufferPool{
		slots: slots,
		inUse: make([]atomic.Bool, capacity),
		free:  concurrency.NewRing[int32](capacity),
		arena: a,
		log:   o.logger,
	}
	for i := range p.slots {
		p.slots[i].Clear()
		p.free.Enqueue(int32(i))
	}
	return p, nil
}

// acquire is the common slot checkout; it reports exhaustion without
// logging so the non-failing path stays quiet under busy-polling.
func (p *BufferPool) acquire() (UniqueBuffer, error) {
	if p.closed.Load() {
		return UniqueBuffer{}, api.ErrPoolClosed
	}
	idx, ok := p.free.Dequeue()
	if !ok {
		return UniqueBuffer{}, api.ErrPoolExhausted
	}
	p.inUse[idx].Store(true)
	p.acquired.Add(1)
	b := &p.slots[idx]
	b.Clear()
	return UniqueBuffer{b: b, p: p}, nil
}

// Acquire returns an owning handle over a cleared buffer. Exhaustion is
// reported as api.ErrPoolExhausted; call sites that must not fail use
// TryAcquire instead.
func (p *BufferPool) Acquire() (UniqueBuffer, error) {
	u, err := p.acquire()
	if errors.Is(err, api.ErrPoolExhausted) {
		p.log.Warn("buffer pool exhausted",
			zap.Int("capacity", len(p.slots)))
	}
	return u, err
}

// TryAcquire is the non-failing path: on exhaustion it yields an
// invalid zero handle and false, never an error and never a log entry.
func (p *BufferPool) TryAcquire() (UniqueBuffer, bool) {
	u, err := p.acquire()
	return u, err == nil
}

// MustAcquire is the fatal path: callers treat exhaustion as a
// programming error in pool sizing.
func (p *BufferPool) MustAcquire() UniqueBuffer {
	u, err := p.Acquire()
	if err != nil {
		p.log.Error("unrecoverable buffer pool failure", zap.Error(err))
		panic(err)
	}
	return u
}

// release returns a buffer's slot to the free list. Releasing a buffer
// that does not belong to this pool, or releasing a slot twice, is a
// contract violation.
func (p *BufferPool) release(b *buffer.ByteBuffer) {
	idx := p.slotIndex(b)
	if !p.inUse[idx].CompareAndSwap(true, false) {
		panic("pool: double release of buffer slot")
	}
	p.released.Add(1)
	if p.closed.Load() {
		return // pool shut down; slot stays out of circulation
	}
	p.free.Enqueue(int32(idx))
}

// slotIndex recovers the arena slot index from the buffer address.
func (p *BufferPool) slotIndex(b *buffer.ByteBuffer) int {
	base := uintptr(unsafe.Pointer(&p.slots[0]))
	size := unsafe.Sizeof(buffer.ByteBuffer{})
	off := uintptr(unsafe.Pointer(b)) - base
	idx := int(off / size)
	if off%size != 0 || idx < 0 || idx >= len(p.slots) {
		panic("pool: release of buffer not owned by this pool")
	}
	return idx
}

// Stats exposes allocation accounting.
func (p *BufferPool) Stats() api.PoolStats {
	acquired := p.acquired.Load()
	released := p.released.Load()
	return api.PoolStats{
		Capacity:      int64(len(p.slots)),
		TotalAcquired: acquired,
		TotalReleased: released,
		InUse:         acquired - released,
	}
}

// Close tears the pool down and unmaps the arena. Buffers still in
// flight are reported as leaks; their slots are gone with the arena, so
// callers must release everything first.
func (p *BufferPool) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	if leaked := p.acquired.Load() - p.released.Load(); leaked > 0 {
		p.log.Warn("closing pool with buffers still in flight",
			zap.Int64("leaked", leaked))
	}
	for {
		if _, ok := p.free.Dequeue(); !ok {
			break
		}
	}
	return p.arena.free()
}

func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
