// Package api
// Author: momentics <momentics@gmail.com>
//
// Library-wide contracts for hioload-pdu: pooled allocation interfaces,
// pool statistics, and structured error types.
//
// Buffers handed out by a pool are owned by exactly one consumer at a
// time. The pool is the only component that must be internally
// thread-safe; individual buffers are not.
package api
