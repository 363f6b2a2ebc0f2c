package value

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gogpu/ui/state"
)

// derived memoises fn over a fixed dependency set.
type derived[T any] struct {
	deps         state.AddressSet
	cache        Cache[T]
	computations atomic.Int64
}

func (d *derived[T]) get(fn func() T) T {
	return d.cache.Get(func() T {
		d.computations.Add(1)
		return fn()
	})
}

// invalidate resets the memo when an input dropped a cache of its own or
// addrs touches a dependency.
func (d *derived[T]) invalidate(addrs state.AddressSet, inputs bool) bool {
	if !inputs && !d.deps.Intersects(addrs) {
		return false
	}
	reset := d.cache.Reset()
	return inputs || reset
}

// Stringify formats another source with fmt.Sprint and memoises the text.
type Stringify[T any] struct {
	src Source[T]
	d   derived[string]
}

// Stringified returns a memoised string view of src.
func Stringified[T any](src Source[T]) *Stringify[T] {
	s := &Stringify[T]{src: src}
	s.d.deps = dependenciesOf(src)
	return s
}

// Get returns the formatted value.
func (s *Stringify[T]) Get() string {
	return s.d.get(func() string { return fmt.Sprint(s.src.Get()) })
}

// Cached returns the memo if it is filled.
func (s *Stringify[T]) Cached() (string, bool) { return s.d.cache.Peek() }

// Computations returns how many times the value was formatted.
func (s *Stringify[T]) Computations() int64 { return s.d.computations.Load() }

// InvalidateCaches implements Source.
func (s *Stringify[T]) InvalidateCaches(addrs state.AddressSet) bool {
	return s.d.invalidate(addrs, s.src.InvalidateCaches(addrs))
}

// Dependencies implements Source.
func (s *Stringify[T]) Dependencies(deps *state.AddressSet) { deps.Union(s.d.deps) }

// Concatenation joins string sources and memoises the result.
type Concatenation struct {
	parts []Source[string]
	d     derived[string]
}

// Concat joins a and b.
func Concat(a, b Source[string]) *Concatenation {
	return newConcatenation(a, b)
}

// Concat3 joins a, b and c.
func Concat3(a, b, c Source[string]) *Concatenation {
	return newConcatenation(a, b, c)
}

func newConcatenation(parts ...Source[string]) *Concatenation {
	c := &Concatenation{parts: parts}
	c.d.deps = dependenciesOf(parts...)
	return c
}

// Get returns the joined string.
func (c *Concatenation) Get() string {
	return c.d.get(func() string {
		var b strings.Builder
		for _, p := range c.parts {
			b.WriteString(p.Get())
		}
		return b.String()
	})
}

// Computations returns how many times the parts were joined.
func (c *Concatenation) Computations() int64 { return c.d.computations.Load() }

// InvalidateCaches implements Source. Every part is visited.
func (c *Concatenation) InvalidateCaches(addrs state.AddressSet) bool {
	inputs := false
	for _, p := range c.parts {
		if p.InvalidateCaches(addrs) {
			inputs = true
		}
	}
	return c.d.invalidate(addrs, inputs)
}

// Dependencies implements Source.
func (c *Concatenation) Dependencies(deps *state.AddressSet) { deps.Union(c.d.deps) }

// Number is the constraint accepted by Sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Summation adds two sources on every read. It keeps no memo.
type Summation[N Number] struct {
	a, b Source[N]
}

// Sum returns a + b evaluated lazily.
func Sum[N Number](a, b Source[N]) Summation[N] {
	return Summation[N]{a: a, b: b}
}

// Get returns a.Get() + b.Get().
func (s Summation[N]) Get() N { return s.a.Get() + s.b.Get() }

// InvalidateCaches forwards to both inputs.
func (s Summation[N]) InvalidateCaches(addrs state.AddressSet) bool {
	a := s.a.InvalidateCaches(addrs)
	b := s.b.InvalidateCaches(addrs)
	return a || b
}

// Dependencies implements Source.
func (s Summation[N]) Dependencies(deps *state.AddressSet) {
	s.a.Dependencies(deps)
	s.b.Dependencies(deps)
}
