// Package buffer
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity PDU buffers for latency-sensitive packet pipelines.
//
// ByteBuffer and BitBuffer carry variable-length payloads inside a fixed
// backing array with reserved headroom, so upper layers can prepend
// headers and append trailers in place without reallocating. Instances
// are pointer-free plain data and may therefore live in pool arenas
// outside the Go heap.
//
// A buffer is owned by exactly one logical owner at a time. Nothing in
// this package locks; serialize cross-goroutine access externally or
// transfer ownership through the pool handle.
package buffer
