// File: core/buffer/clock.go
// Author: momentics <momentics@gmail.com>
//
// Monotonic clock base shared by the latency tracker builds. Timestamps
// are stored as int64 nanoseconds relative to clockBase so buffer
// structs stay pointer-free and arena-safe.

package buffer

import "time"

var clockBase = time.Now()

// nowNanos returns monotonic nanoseconds since process start.
func nowNanos() int64 {
	return int64(time.Since(clockBase))
}
