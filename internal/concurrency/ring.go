// File: internal/concurrency/ring.go
// Package concurrency provides the lock-free ring used as pool free list.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded MPMC ring with per-cell sequence numbers, after the pattern
// by Dmitry Vyukov. Head and tail live on separate cache lines.

package concurrency

import "sync/atomic"

const cacheLinePad = 64

// Ring is a bounded multi-producer multi-consumer ring buffer.
// Capacity is rounded up to a power of two.
type Ring[T any] struct {
	head  atomic.Uint64
	_     [cacheLinePad]byte
	tail  atomic.Uint64
	_     [cacheLinePad]byte
	mask  uint64
	cells []ringCell[T]
}

type ringCell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// NewRing allocates a ring holding at least capacity items.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	r := &Ring[T]{
		mask:  uint64(size - 1),
		cells: make([]ringCell[T], size),
	}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

// Enqueue adds item; returns false if the ring is full.
func (r *Ring[T]) Enqueue(item T) bool {
	for {
		tail := r.tail.Load()
		c := &r.cells[tail&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		if dif == 0 {
			if r.tail.CompareAndSwap(tail, tail+1) {
				c.data = item
				c.sequence.Store(tail + 1)
				return true
			}
		} else if dif < 0 {
			return false // full
		}
		// tail moved, retry
	}
}

// Dequeue removes and returns an item; ok is false when empty.
func (r *Ring[T]) Dequeue() (item T, ok bool) {
	for {
		head := r.head.Load()
		c := &r.cells[head&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)

		if dif == 0 {
			if r.head.CompareAndSwap(head, head+1) {
				item = c.data
				c.sequence.Store(head + r.mask + 1)
				return item, true
			}
		} else if dif < 0 {
			var zero T
			return zero, false // empty
		}
		// head moved, retry
	}
}

// Len returns the number of items currently enqueued.
func (r *Ring[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns the rounded-up fixed capacity.
func (r *Ring[T]) Cap() int {
	return len(r.cells)
}
