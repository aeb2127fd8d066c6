package pool_test

import (
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/momentics/hioload-pdu/api"
	"github.com/momentics/hioload-pdu/core/buffer"
	"github.com/momentics/hioload-pdu/pool"
)

func newPool(t *testing.T, capacity int) *pool.BufferPool {
	t.Helper()
	p, err := pool.NewBufferPool(capacity)
	if err != nil {
		t.Fatalf("NewBufferPool(%d): %v", capacity, err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestAcquireReleaseReuse(t *testing.T) {
	p := newPool(t, 1)

	u1, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	first := u1.Get()
	u1.Release()

	u2, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	if u2.Get() != first {
		t.Error("released slot was not reused")
	}
	u2.Release()
}

func TestAcquiredBufferIsCleared(t *testing.T) {
	p := newPool(t, 1)

	u, _ := p.Acquire()
	u.Get().Append([]byte{1, 2, 3})
	u.Get().Meta.Seq = 99
	u.Release()

	u, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	b := u.Get()
	if b.Size() != 0 || b.Headroom() != buffer.DefaultHeaderOffset || b.Meta.Seq != 0 {
		t.Errorf("reacquired buffer not cleared: size=%d headroom=%d seq=%d",
			b.Size(), b.Headroom(), b.Meta.Seq)
	}
	u.Release()
}

func TestExhaustion(t *testing.T) {
	p := newPool(t, 2)

	var held []pool.UniqueBuffer
	for i := 0; i < 2; i++ {
		u, err := p.Acquire()
		if err != nil {
			t.Fatalf("Acquire %d: %v", i, err)
		}
		held = append(held, u)
	}

	// Default path: hard failure.
	if _, err := p.Acquire(); !errors.Is(err, api.ErrPoolExhausted) {
		t.Errorf("Acquire on empty pool: err = %v, want ErrPoolExhausted", err)
	}

	// Non-failing path: invalid handle, no error anywhere.
	u, ok := p.TryAcquire()
	if ok || u.Valid() {
		t.Errorf("TryAcquire on empty pool: ok=%v valid=%v, want invalid handle", ok, u.Valid())
	}
	if u.Span() != nil {
		t.Error("invalid handle yields a non-nil span")
	}

	for i := range held {
		held[i].Release()
	}
}

func TestMustAcquirePanicsWhenExhausted(t *testing.T) {
	p := newPool(t, 1)
	u := p.MustAcquire()
	defer u.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("expected MustAcquire to panic on exhausted pool")
		}
	}()
	p.MustAcquire()
}

func TestHandleReleaseIdempotent(t *testing.T) {
	p := newPool(t, 1)

	u, _ := p.Acquire()
	u.Release()
	u.Release() // second release of the same handle is a no-op

	if got := p.Stats().InUse; got != 0 {
		t.Errorf("InUse = %d, want 0", got)
	}

	var zero pool.UniqueBuffer
	zero.Release() // zero handle release is a no-op too
}

func TestStatsAccounting(t *testing.T) {
	p := newPool(t, 4)

	u1, _ := p.Acquire()
	u2, _ := p.Acquire()
	u1.Release()

	s := p.Stats()
	if s.Capacity != 4 {
		t.Errorf("Capacity = %d, want 4", s.Capacity)
	}
	if s.TotalAcquired != 2 || s.TotalReleased != 1 || s.InUse != 1 {
		t.Errorf("stats = %+v, want acquired=2 released=1 inUse=1", s)
	}
	u2.Release()
}

func TestAcquireAfterClose(t *testing.T) {
	p, err := pool.NewBufferPool(2)
	if err != nil {
		t.Fatalf("NewBufferPool: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := p.Acquire(); !errors.Is(err, api.ErrPoolClosed) {
		t.Errorf("Acquire after Close: err = %v, want ErrPoolClosed", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestInvalidCapacityRejected(t *testing.T) {
	if _, err := pool.NewBufferPool(0); err == nil {
		t.Error("NewBufferPool(0) succeeded, want error")
	}
}

func TestTryAcquireMissIsSilent(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p, err := pool.NewBufferPool(1, pool.WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("NewBufferPool: %v", err)
	}
	defer p.Close()

	u, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer u.Release()

	// Busy-polling the non-failing path must not spam the logger.
	for i := 0; i < 100; i++ {
		if _, ok := p.TryAcquire(); ok {
			t.Fatal("TryAcquire succeeded on exhausted pool")
		}
	}
	if logs.Len() != 0 {
		t.Errorf("TryAcquire misses logged %d entries, want 0", logs.Len())
	}

	// The failing path still warns.
	if _, err := p.Acquire(); !errors.Is(err, api.ErrPoolExhausted) {
		t.Fatalf("Acquire on empty pool: err = %v, want ErrPoolExhausted", err)
	}
	if logs.Len() != 1 {
		t.Errorf("exhausted Acquire logged %d entries, want 1", logs.Len())
	}
}

func TestConcurrentAcquireRelease(t *testing.T) {
	const (
		workers = 8
		rounds  = 1000
	)
	p := newPool(t, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seq uint32) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				u, err := p.Acquire()
				if err != nil {
					t.Errorf("Acquire: %v", err)
					return
				}
				b := u.Get()
				b.Meta.Seq = seq
				b.Append([]byte{byte(seq)})
				if b.Data()[0] != byte(seq) {
					t.Errorf("payload corrupted: got %d want %d", b.Data()[0], byte(seq))
				}
				u.Release()
			}
		}(uint32(w))
	}
	wg.Wait()

	s := p.Stats()
	if s.InUse != 0 {
		t.Errorf("InUse after all releases = %d, want 0", s.InUse)
	}
	if s.TotalAcquired != workers*rounds {
		t.Errorf("TotalAcquired = %d, want %d", s.TotalAcquired, workers*rounds)
	}
}

func BenchmarkAcquireRelease(b *testing.B) {
	p, err := pool.NewBufferPool(64)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u, _ := p.Acquire()
		u.Release()
	}
}

func BenchmarkAppend(b *testing.B) {
	p, err := pool.NewBufferPool(1)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()
	payload := make([]byte, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u, _ := p.Acquire()
		u.Get().Append(payload)
		u.Release()
	}
}
