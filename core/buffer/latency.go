//go:build !hioload_notrace

// File: core/buffer/latency.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Latency tracker recording when a payload was produced. Diagnostic
// only: an unset timestamp reads as zero latency, never as an error.
// Build with -tags hioload_notrace to compile the no-op variant.

package buffer

import "time"

// LatencyTracker holds an optional production timestamp.
// The zero value is the unset state.
type LatencyTracker struct {
	tp  int64
	set bool
}

// Clear forgets any stored timestamp.
func (t *LatencyTracker) Clear() {
	t.set = false
}

// SetTimestamp records "now" as the production time.
func (t *LatencyTracker) SetTimestamp() {
	t.tp = nowNanos()
	t.set = true
}

// SetTimestampAt records an explicit production time.
func (t *LatencyTracker) SetTimestampAt(tp time.Time) {
	t.tp = int64(tp.Sub(clockBase))
	t.set = true
}

// Timestamp returns the stored production time, or the zero Time when unset.
func (t *LatencyTracker) Timestamp() time.Time {
	if !t.set {
		return time.Time{}
	}
	return clockBase.Add(time.Duration(t.tp))
}

// Latency returns the elapsed time since the stored timestamp,
// or zero when no timestamp was set.
func (t *LatencyTracker) Latency() time.Duration {
	if !t.set {
		return 0
	}
	return time.Duration(nowNanos() - t.tp)
}
