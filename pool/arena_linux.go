//go:build linux

// File: pool/arena_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux arena backing via anonymous mmap, optionally on hugepages.
// Keeping the whole slot array out of the Go heap removes GC pressure
// from the packet path; ByteBuffer is pointer-free plain data, so the
// cast below is safe for the collector.

package pool

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-pdu/api"
	"github.com/momentics/hioload-pdu/core/buffer"
)

type arena struct {
	mem []byte
}

// hugePageSize is the common x86-64 hugepage size. MAP_HUGETLB rejects
// lengths that are not a hugepage multiple.
const hugePageSize = 2 << 20

// arenaSize returns the mmap length for capacity slots: SIMD-aligned,
// and rounded up to a hugepage multiple when hugepages are requested.
func arenaSize(capacity int, hugepages bool) int {
	slotSize := int(unsafe.Sizeof(buffer.ByteBuffer{}))
	size := alignUp(capacity*slotSize, buffer.SIMDWidthBytes)
	if hugepages {
		size = alignUp(size, hugePageSize)
	}
	return size
}

func newArena(capacity int, hugepages bool) (arena, []buffer.ByteBuffer, error) {
	size := arenaSize(capacity, hugepages)

	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_PRIVATE | unix.MAP_ANONYMOUS

	var mem []byte
	var err error
	if hugepages {
		mem, err = unix.Mmap(-1, 0, size, prot, flags|unix.MAP_HUGETLB)
	}
	if mem == nil {
		// No hugepage request, or the kernel had none free.
		mem, err = unix.Mmap(-1, 0, size, prot, flags)
	}
	if err != nil {
		return arena{}, nil, api.NewError(api.ErrCodeInternal, "arena mmap failed").
			WithContext("size", size).
			WithContext("errno", err.Error())
	}

	slots := unsafe.Slice((*buffer.ByteBuffer)(unsafe.Pointer(&mem[0])), capacity)
	return arena{mem: mem}, slots, nil
}

func (a *arena) free() error {
	if a.mem == nil {
		return nil
	}
	err := unix.Munmap(a.mem)
	a.mem = nil
	return err
}
