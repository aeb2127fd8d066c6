// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Abstract pooling contracts: reusable fixed-capacity buffer allocation
// routed through a pool instead of the general-purpose allocator.

package api

// Pool hands out owning handles of type H from a fixed-capacity reserve.
//
// Acquire is the default path: it fails with ErrPoolExhausted when the
// reserve is empty. TryAcquire is the non-failing path for call sites
// that must not fail loudly: on exhaustion it yields a zero handle and
// false, never an error. Implementations must be safe for concurrent use
// from many producer/consumer goroutines.
type Pool[H any] interface {
	// Acquire returns an owning handle, or ErrPoolExhausted.
	Acquire() (H, error)

	// TryAcquire returns (zero handle, false) when the pool is empty.
	TryAcquire() (H, bool)

	// Stats exposes allocation accounting for observability.
	Stats() PoolStats
}

// PoolStats aggregates pool allocation/reuse accounting.
type PoolStats struct {
	// Capacity is the fixed number of slots the pool was built with.
	// Zero for pools that grow on demand.
	Capacity int64

	// TotalAcquired counts successful acquisitions over the pool lifetime.
	TotalAcquired int64

	// TotalReleased counts releases back into the pool.
	TotalReleased int64

	// InUse is TotalAcquired - TotalReleased.
	InUse int64
}
