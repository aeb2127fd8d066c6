//go:build !linux

// File: pool/arena_stub.go
// Author: momentics <momentics@gmail.com>
//
// Portable arena fallback: a plain heap slice. Hugepage requests are
// ignored on platforms without mmap support here.

package pool

import "github.com/momentics/hioload-pdu/core/buffer"

type arena struct{}

func newArena(capacity int, _ bool) (arena, []buffer.ByteBuffer, error) {
	return arena{}, make([]buffer.ByteBuffer, capacity), nil
}

func (a *arena) free() error { return nil }
