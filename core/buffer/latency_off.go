//go:build hioload_notrace

// File: core/buffer/latency_off.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// No-op latency tracker build. Keeps the same API surface so callers
// compile unchanged; every query reports the unset state.

package buffer

import "time"

// LatencyTracker is compiled out; all operations are no-ops.
type LatencyTracker struct{}

// Clear forgets any stored timestamp.
func (t *LatencyTracker) Clear() {}

// SetTimestamp records nothing in this build.
func (t *LatencyTracker) SetTimestamp() {}

// SetTimestampAt records nothing in this build.
func (t *LatencyTracker) SetTimestampAt(time.Time) {}

// Timestamp always returns the zero Time.
func (t *LatencyTracker) Timestamp() time.Time { return time.Time{} }

// Latency always returns zero.
func (t *LatencyTracker) Latency() time.Duration { return 0 }
