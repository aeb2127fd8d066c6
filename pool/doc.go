// Package pool
// Author: momentics <momentics@gmail.com>
//
// Pool-backed allocation for fixed-capacity PDU buffers.
//
// BufferPool preallocates every buffer slot in one arena and hands out
// move-only owning handles; construction and destruction never touch
// the general-purpose allocator on the hot path. The free list is a
// lock-free ring of slot indices, so membership bookkeeping lives in
// the pool and never inside the buffer itself. FIFOPool covers the
// grow-on-demand reuse of bit buffers.
//
// Pools are safe for concurrent use from many producer/consumer
// goroutines. No operation blocks.
package pool
