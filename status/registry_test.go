package status

import (
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}

	a.Store(7)
	if b.Load() != 7 {
		t.Errorf("value not shared: %d", b.Load())
	}
	if !r.Ints.Has(KeyTicks) || r.Ints.Has(KeyFoodEaten) {
		t.Error("Has reports wrong membership")
	}
}

func TestMetricMapKeysStaySorted(t *testing.T) {
	m := NewMetricMap[int]()
	for _, k := range []string{"m", "c", "x", "a", "c"} {
		*m.Get(k)++
	}

	var keys []string
	m.Range(func(k string, v *int) {
		keys = append(keys, k)
		if k == "c" && *v != 2 {
			t.Errorf("c = %d, want 2", *v)
		}
	})
	if strings.Join(keys, "") != "acmx" {
		t.Errorf("Range order %v", keys)
	}
	if m.Count() != 4 {
		t.Errorf("Count = %d, want 4", m.Count())
	}
}

func TestRangeSortedAndReset(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeySnakeLength).Store(3)
	r.Ints.Get(KeyFoodEaten).Store(1)
	r.Ints.Get(KeyTicks).Store(40)

	var keys []string
	r.Ints.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	want := []string{KeyTicks, KeyFoodEaten, KeySnakeLength}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("Range order %v, want %v", keys, want)
	}

	r.ResetInts()
	r.Ints.Range(func(k string, v *atomic.Int64) {
		if v.Load() != 0 {
			t.Errorf("%s = %d after reset", k, v.Load())
		}
	})
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("zero value = %q", s.Load())
	}
	long := strings.Repeat("x", MaxStringLen+5)
	s.Store(long)
	if len(s.Load()) != MaxStringLen {
		t.Errorf("len = %d, want %d", len(s.Load()), MaxStringLen)
	}
}

func TestAtomicStringKeepsRunesWhole(t *testing.T) {
	var s AtomicString
	// 35 ASCII bytes then a 3-byte rune straddling the cap
	s.Store(strings.Repeat("a", MaxStringLen-1) + "世界")
	got := s.Load()
	if !utf8.ValidString(got) {
		t.Fatalf("truncated to invalid UTF-8: %q", got)
	}
	if len(got) != MaxStringLen-1 {
		t.Errorf("len = %d, want %d", len(got), MaxStringLen-1)
	}

	id := "0f8fad5b-d9cb-469f-a165-70867728950e"
	s.Store(id)
	if s.Load() != id {
		t.Errorf("uuid stored as %q", s.Load())
	}
}
