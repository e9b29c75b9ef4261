package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat

	if f.Get() != 0.0 {
		t.Errorf("Expected zero value 0.0, got %v", f.Get())
	}

	f.Set(1.5)
	if f.Get() != 1.5 {
		t.Errorf("Expected 1.5 after Set, got %v", f.Get())
	}

	if got := f.Add(0.5); got != 2.0 {
		t.Errorf("Expected Add to return 2.0, got %v", got)
	}
	if f.Get() != 2.0 {
		t.Errorf("Expected 2.0 after Add, got %v", f.Get())
	}

	f.Set(-3.25)
	if f.Get() != -3.25 {
		t.Errorf("Expected -3.25, got %v", f.Get())
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()

	if f.Get() != 4000.0 {
		t.Errorf("Expected 4000.0 after concurrent adds, got %v", f.Get())
	}
}

func TestMetricMapCachedPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	p1 := m.Get("frame.count")
	p1.Store(42)

	p2 := m.Get("frame.count")
	if p1 != p2 {
		t.Error("Expected same pointer for repeated Get")
	}
	if p2.Load() != 42 {
		t.Errorf("Expected cached value 42, got %d", p2.Load())
	}

	if !m.Has("frame.count") {
		t.Error("Expected Has to report registered key")
	}
	if m.Has("frame.missing") {
		t.Error("Expected Has to reject unknown key")
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("frame.wall_ms")
	m.Get("frame.count")
	m.Get("frame.fps")

	var keys []string
	m.Range(func(key string, ptr *atomic.Int64) {
		keys = append(keys, key)
	})

	want := []string{"frame.count", "frame.fps", "frame.wall_ms"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Expected key %q at position %d, got %q", want[i], i, keys[i])
		}
	}
}

func TestRegistryTotalCount(t *testing.T) {
	r := NewRegistry()
	if r.TotalCount() != 0 {
		t.Errorf("Expected empty registry, got %d", r.TotalCount())
	}

	r.Ints.Get("frame.count")
	r.Floats.Get("frame.wall_ms")
	r.Bools.Get("frame.frozen")

	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", r.TotalCount())
	}
}
