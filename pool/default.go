// File: pool/default.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"sync"

	"github.com/momentics/hioload-pdu/core/buffer"
)

var (
	defaultOnce sync.Once
	defaultPool *BufferPool

	defaultBitOnce sync.Once
	defaultBitPool *FIFOPool[*buffer.BitBuffer]
)

// DefaultPool returns a process-wide buffer pool so all pipeline stages
// reuse the same slots instead of fragmenting allocations.
func DefaultPool() *BufferPool {
	defaultOnce.Do(func() {
		p, err := NewBufferPool(DefaultCapacity)
		if err != nil {
			panic(err)
		}
		defaultPool = p
	})
	return defaultPool
}

// NewBitBufferPool builds a reuse pool for bit buffers.
func NewBitBufferPool() *FIFOPool[*buffer.BitBuffer] {
	return NewFIFOPool(buffer.NewBitBuffer, (*buffer.BitBuffer).Clear)
}

// DefaultBitPool returns the process-wide bit buffer pool.
func DefaultBitPool() *FIFOPool[*buffer.BitBuffer] {
	defaultBitOnce.Do(func() {
		defaultBitPool = NewBitBufferPool()
	})
	return defaultBitPool
}
