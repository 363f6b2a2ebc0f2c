package value

import (
	"sync"
	"testing"

	"github.com/gogpu/ui/state"
	"github.com/google/go-cmp/cmp"
)

func TestAuto(t *testing.T) {
	a := Of([]string{"a", "b"})
	if diff := cmp.Diff([]string{"a", "b"}, a.Get()); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}
	var deps state.AddressSet
	a.Dependencies(&deps)
	if !deps.Empty() {
		t.Errorf("Dependencies() = %v, want empty", deps)
	}
	if a.InvalidateCaches(state.NewAddressSet(1)) {
		t.Error("InvalidateCaches() = true for a constant")
	}
}

func TestCache(t *testing.T) {
	var c Cache[int]
	calls := 0
	fill := func() int { calls++; return 42 }

	if got := c.Get(fill); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
	c.Get(fill)
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
	if !c.Reset() {
		t.Error("Reset() of filled cache = false")
	}
	if c.Reset() {
		t.Error("Reset() of empty cache = true")
	}
	if _, ok := c.Peek(); ok {
		t.Error("Peek() after Reset reports filled")
	}
}

func TestStringifyComputesOnce(t *testing.T) {
	cell := state.NewShared(12)
	s := Stringified[int](FromShared(cell))
	if got := s.Get(); got != "12" {
		t.Errorf("Get() = %q, want %q", got, "12")
	}
	if got := s.Get(); got != "12" {
		t.Errorf("second Get() = %q, want %q", got, "12")
	}
	if n := s.Computations(); n != 1 {
		t.Errorf("Computations() = %d, want 1", n)
	}
}

func TestStringifyInvalidationGate(t *testing.T) {
	q := state.NewQueue()
	cell := state.NewShared(1)
	other := state.NewShared(0)
	s := Stringified[int](FromShared(cell))
	s.Get()

	cell.Store(q.Sender(), 2)

	if s.InvalidateCaches(state.NewAddressSet(other.Addr())) {
		t.Error("InvalidateCaches(other) = true, want false")
	}
	if got, ok := s.Cached(); !ok || got != "1" {
		t.Errorf("Cached() = %q, %v; want stale memo %q kept", got, ok, "1")
	}

	addrs := state.NewAddressSet(cell.Addr())
	if !s.InvalidateCaches(addrs) {
		t.Error("InvalidateCaches(cell) = false, want true")
	}
	if s.InvalidateCaches(addrs) {
		t.Error("repeated InvalidateCaches(cell) = true, want false")
	}
	if got := s.Get(); got != "2" {
		t.Errorf("Get() after invalidation = %q, want %q", got, "2")
	}
	if n := s.Computations(); n != 2 {
		t.Errorf("Computations() = %d, want 2", n)
	}
}

func TestConcat3(t *testing.T) {
	q := state.NewQueue()
	counter := state.NewShared(0)
	strfy := Stringified[int](FromShared(counter))
	text := Concat3(Of("clicked "), strfy, Of(" times"))

	if got := text.Get(); got != "clicked 0 times" {
		t.Errorf("Get() = %q", got)
	}

	var deps state.AddressSet
	text.Dependencies(&deps)
	if diff := cmp.Diff([]state.Address{counter.Addr()}, deps.Slice()); diff != "" {
		t.Errorf("Dependencies() mismatch (-want +got):\n%s", diff)
	}

	counter.Store(q.Sender(), 3)
	if !text.InvalidateCaches(deps) {
		t.Fatal("InvalidateCaches() = false")
	}
	if _, ok := strfy.Cached(); ok {
		t.Error("inner stringifier memo survived invalidation")
	}
	if got := text.Get(); got != "clicked 3 times" {
		t.Errorf("Get() = %q", got)
	}
}

func TestConcatInnerResetPropagates(t *testing.T) {
	cell := state.NewShared(5)
	inner := Stringified[int](FromShared(cell))
	c := Concat(inner, Of("!"))

	// Only the inner memo is filled.
	inner.Get()
	if !c.InvalidateCaches(state.NewAddressSet(cell.Addr())) {
		t.Error("InvalidateCaches() = false although the inner memo was reset")
	}
	if c.Computations() != 0 {
		t.Errorf("Computations() = %d, want 0", c.Computations())
	}
}

func TestSumUncached(t *testing.T) {
	q := state.NewQueue()
	a := state.NewShared(2)
	s := Sum[int](FromShared(a), Of(3))
	if got := s.Get(); got != 5 {
		t.Errorf("Get() = %d, want 5", got)
	}
	a.Store(q.Sender(), 10)
	if got := s.Get(); got != 13 {
		t.Errorf("Get() after write = %d, want 13", got)
	}
	if s.InvalidateCaches(state.NewAddressSet(a.Addr())) {
		t.Error("InvalidateCaches() = true for an uncached sum")
	}
}

func TestStringifyConcurrentReads(t *testing.T) {
	s := Stringified[float64](Of(1.5))
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := s.Get(); got != "1.5" {
				t.Errorf("Get() = %q", got)
			}
		}()
	}
	wg.Wait()
	if n := s.Computations(); n != 1 {
		t.Errorf("Computations() = %d, want 1", n)
	}
}
