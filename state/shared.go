package state

import (
	"fmt"
	"sync"
)

// Shared is a mutable cell addressed by a stable Address.
//
// A *Shared is the handle: copies of the pointer alias the same cell and
// report the same address. Reads never produce signals; every released
// write guard produces exactly one SharedUpdated signal.
//
// A cell must only be accessed from the event loop thread.
type Shared[T any] struct {
	addr  Address
	mu    sync.RWMutex
	value T
}

// NewShared returns a cell holding v.
func NewShared[T any](v T) *Shared[T] {
	return &Shared[T]{addr: newAddress(), value: v}
}

// Addr returns the cell's address.
func (s *Shared[T]) Addr() Address { return s.addr }

// Read locks the cell for reading. The guard must be released.
// Reading while a write guard is alive panics with ErrReentrant.
func (s *Shared[T]) Read() *ReadGuard[T] {
	if !s.mu.TryRLock() {
		panic(fmt.Errorf("%w: read of %v during write", ErrReentrant, s.addr))
	}
	return &ReadGuard[T]{cell: s}
}

// Write locks the cell for writing. Releasing the guard sends
// SharedUpdated(s.Addr()) through sender.
// Writing while any guard is alive panics with ErrReentrant.
func (s *Shared[T]) Write(sender Sender) *WriteGuard[T] {
	if !s.mu.TryLock() {
		panic(fmt.Errorf("%w: write of %v while guarded", ErrReentrant, s.addr))
	}
	return &WriteGuard[T]{cell: s, sender: sender}
}

// Load returns a copy of the current value.
func (s *Shared[T]) Load() T {
	g := s.Read()
	defer g.Release()
	return g.Get()
}

// Store replaces the value and publishes the update.
func (s *Shared[T]) Store(sender Sender, v T) {
	g := s.Write(sender)
	defer g.Release()
	*g.Ptr() = v
}

// Update applies fn to the value in place and publishes the update.
func (s *Shared[T]) Update(sender Sender, fn func(*T)) {
	g := s.Write(sender)
	defer g.Release()
	fn(g.Ptr())
}

// ReadGuard is a live read lock on a Shared cell.
type ReadGuard[T any] struct {
	cell     *Shared[T]
	released bool
}

// Get returns the guarded value.
func (g *ReadGuard[T]) Get() T { return g.cell.value }

// Release unlocks the cell. Extra calls are no-ops.
func (g *ReadGuard[T]) Release() {
	if g.released {
		return
	}
	g.released = true
	g.cell.mu.RUnlock()
}

// WriteGuard is a live write lock on a Shared cell.
type WriteGuard[T any] struct {
	cell     *Shared[T]
	sender   Sender
	released bool
}

// Ptr returns a pointer to the guarded value. It must not outlive the guard.
func (g *WriteGuard[T]) Ptr() *T { return &g.cell.value }

// Get returns the guarded value.
func (g *WriteGuard[T]) Get() T { return g.cell.value }

// Set replaces the guarded value.
func (g *WriteGuard[T]) Set(v T) { g.cell.value = v }

// Release unlocks the cell and publishes SharedUpdated once.
// Extra calls are no-ops. A receiver that vanished outside shutdown panics.
func (g *WriteGuard[T]) Release() {
	if g.released {
		return
	}
	g.released = true
	g.cell.mu.Unlock()
	if err := g.sender.Send(SharedUpdated(g.cell.addr)); err != nil {
		panic(fmt.Errorf("state: publish update of %v: %w", g.cell.addr, err))
	}
}
