package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapCachesPointers(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Error("Expected same pointer for repeated Get")
	}
	if !m.Has("x") || m.Has("y") {
		t.Error("Unexpected Has result")
	}
	if m.Count() != 1 {
		t.Errorf("Expected count 1, got %d", m.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("c").Store(3)
	r.Ints.Get("a").Store(1)
	r.Ints.Get("b").Store(2)

	var keys []string
	var sum int64
	r.Ints.Range(func(k string, v *atomic.Int64) {
		keys = append(keys, k)
		sum += v.Load()
	})
	if len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
		t.Errorf("Expected sorted keys [a b c], got %v", keys)
	}
	if sum != 6 {
		t.Errorf("Expected sum 6, got %d", sum)
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Get(KeyTicks).Add(1)
			}
		}()
	}
	wg.Wait()
	if got := m.Get(KeyTicks).Load(); got != 16000 {
		t.Errorf("Expected 16000, got %d", got)
	}
}

func TestAtomicFloatMax(t *testing.T) {
	var f AtomicFloat
	f.Set(2.5)
	if f.Max(1) != 2.5 {
		t.Error("Expected lower value ignored")
	}
	if f.Max(7) != 7 || f.Get() != 7 {
		t.Errorf("Expected max raised to 7, got %v", f.Get())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected zero value to load empty")
	}
	long := "0123456789012345678901234567890123456789"
	s.Store(long)
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected truncation to %d, got %d", MaxStringLen, len(s.Load()))
	}
}

func TestRegistryFormat(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyRally).Store(4)
	r.Ints.Get(KeyLongestRally).Store(9)
	r.Bools.Get(KeyAudioMuted).Store(true)
	r.Strings.Get(KeyMatchState).Store("Live")

	got := r.Format(KeyRally, KeyLongestRally, KeyStrikes)
	if got != "current=4 longest=9" {
		t.Errorf("Expected \"current=4 longest=9\", got %q", got)
	}
	if r.Ints.Has(KeyStrikes) {
		t.Error("Expected Format not to create missing keys")
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}
