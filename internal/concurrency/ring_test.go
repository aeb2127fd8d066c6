package concurrency_test

import (
	"sync"
	"testing"

	"github.com/momentics/hioload-pdu/internal/concurrency"
)

func TestRingOrder(t *testing.T) {
	r := concurrency.NewRing[int](4)
	for i := 0; i < 4; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("Enqueue(%d) failed on non-full ring", i)
		}
	}
	for i := 0; i < 4; i++ {
		v, ok := r.Dequeue()
		if !ok || v != i {
			t.Fatalf("Dequeue = (%d, %v), want (%d, true)", v, ok, i)
		}
	}
}

func TestRingFullAndEmpty(t *testing.T) {
	r := concurrency.NewRing[int](2)
	if _, ok := r.Dequeue(); ok {
		t.Error("Dequeue on empty ring reported ok")
	}
	r.Enqueue(1)
	r.Enqueue(2)
	if r.Enqueue(3) {
		t.Error("Enqueue on full ring reported ok")
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}

func TestRingCapacityRounding(t *testing.T) {
	r := concurrency.NewRing[int](5)
	if r.Cap() != 8 {
		t.Errorf("Cap = %d, want 8 (next power of two)", r.Cap())
	}
}

func TestRingConcurrentConservation(t *testing.T) {
	const (
		producers = 4
		perWorker = 10000
	)
	r := concurrency.NewRing[int](producers * perWorker)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				for !r.Enqueue(base + i) {
				}
			}
		}(p * perWorker)
	}
	wg.Wait()

	seen := make(map[int]bool, producers*perWorker)
	for {
		v, ok := r.Dequeue()
		if !ok {
			break
		}
		if seen[v] {
			t.Fatalf("value %d dequeued twice", v)
		}
		seen[v] = true
	}
	if len(seen) != producers*perWorker {
		t.Errorf("dequeued %d distinct values, want %d", len(seen), producers*perWorker)
	}
}
