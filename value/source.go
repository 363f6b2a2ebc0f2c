// Package value provides the sources elements read their data from.
//
// A [Source] yields a value on demand. Constant sources never change,
// shared-backed sources read through a [state.Shared] cell, and derived
// sources memoise a computation over other sources in a [Cache] that is
// dropped whenever one of their dependencies is invalidated.
package value

import "github.com/gogpu/ui/state"

// Source yields values of type T.
type Source[T any] interface {
	// Get returns the current value. Locks taken to produce it are released
	// before Get returns.
	Get() T

	// InvalidateCaches drops memoised values depending on any address in
	// addrs and reports whether a filled memo was actually cleared.
	InvalidateCaches(addrs state.AddressSet) bool

	// Dependencies adds every shared address the source transitively reads
	// to deps.
	Dependencies(deps *state.AddressSet)
}

// Auto is an owned constant.
type Auto[T any] struct {
	v T
}

// Of returns a constant source holding v.
func Of[T any](v T) Auto[T] { return Auto[T]{v: v} }

// Get returns the constant.
func (a Auto[T]) Get() T { return a.v }

// InvalidateCaches always reports false.
func (Auto[T]) InvalidateCaches(state.AddressSet) bool { return false }

// Dependencies adds nothing.
func (Auto[T]) Dependencies(*state.AddressSet) {}

// Shared reads through a shared cell.
type Shared[T any] struct {
	cell *state.Shared[T]
}

// FromShared returns a source reading cell.
func FromShared[T any](cell *state.Shared[T]) Shared[T] {
	return Shared[T]{cell: cell}
}

// Get returns the value held by the cell.
func (s Shared[T]) Get() T { return s.cell.Load() }

// Cell returns the underlying cell.
func (s Shared[T]) Cell() *state.Shared[T] { return s.cell }

// InvalidateCaches reports false: nothing is memoised.
func (Shared[T]) InvalidateCaches(state.AddressSet) bool { return false }

// Dependencies adds the cell address.
func (s Shared[T]) Dependencies(deps *state.AddressSet) {
	deps.Add(s.cell.Addr())
}

func dependenciesOf[T any](srcs ...Source[T]) state.AddressSet {
	var deps state.AddressSet
	for _, s := range srcs {
		s.Dependencies(&deps)
	}
	return deps
}
