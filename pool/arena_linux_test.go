//go:build linux

package pool

import (
	"testing"
	"unsafe"

	"github.com/momentics/hioload-pdu/core/buffer"
)

func TestArenaSizeHugepageAligned(t *testing.T) {
	size := arenaSize(4, true)
	if size%hugePageSize != 0 {
		t.Errorf("hugepage arena size = %d, want multiple of %d", size, hugePageSize)
	}
	if size < 4*int(unsafe.Sizeof(buffer.ByteBuffer{})) {
		t.Errorf("arena size = %d, smaller than 4 slots", size)
	}
}

func TestArenaSizeSIMDAligned(t *testing.T) {
	size := arenaSize(3, false)
	if size%buffer.SIMDWidthBytes != 0 {
		t.Errorf("arena size = %d, want multiple of %d", size, buffer.SIMDWidthBytes)
	}
}
