// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package resource provides a registry of lazily built per-device values.
//
// Each resource is named by a [Key] that carries its build function. The
// first [Get] for a key builds the value from the registry's device; later
// calls return the same value. Keys are compared by identity, so every
// resource tag is a package-level *Key.
package resource

import (
	"fmt"
	"sync"

	"github.com/gogpu/ui/internal/logx"
	"github.com/gogpu/wgpu"
)

// Key names a resource of type T and knows how to build it.
type Key[T any] struct {
	name  string
	build func(*Registry) (T, error)
}

// NewKey returns a key whose resource is produced by build.
func NewKey[T any](name string, build func(*Registry) (T, error)) *Key[T] {
	return &Key[T]{name: name, build: build}
}

// Name returns the key's name.
func (k *Key[T]) Name() string { return k.name }

type entry struct {
	once  sync.Once
	value any
	err   error
}

// Registry maps keys to built values. It is safe for concurrent use.
type Registry struct {
	device *wgpu.Device

	mu      sync.Mutex
	entries map[any]*entry
	order   []any
}

// NewRegistry returns an empty registry building from device.
// A nil device is allowed when every resource is provided up front.
func NewRegistry(device *wgpu.Device) *Registry {
	return &Registry{device: device, entries: make(map[any]*entry)}
}

// Device returns the device resources are built from.
func (r *Registry) Device() *wgpu.Device { return r.device }

func (r *Registry) entry(key any) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	if !ok {
		e = &entry{}
		r.entries[key] = e
	}
	return e
}

// Get returns the value for k, building it on first use. A failed build is
// remembered and returned again on later calls.
func Get[T any](r *Registry, k *Key[T]) (T, error) {
	e := r.entry(k)
	e.once.Do(func() {
		v, err := k.build(r)
		if err != nil {
			e.err = fmt.Errorf("resource %s: %w", k.name, err)
			return
		}
		e.value = v
		r.mu.Lock()
		r.order = append(r.order, k)
		r.mu.Unlock()
		logx.L().Debug("resource: built", "key", k.name)
	})
	if e.err != nil {
		var zero T
		return zero, e.err
	}
	return e.value.(T), nil
}

// MustGet is like Get but panics when the build fails.
func MustGet[T any](r *Registry, k *Key[T]) T {
	v, err := Get(r, k)
	if err != nil {
		panic(err)
	}
	return v
}

// Provide stores v for k unless a value was already built or provided.
// It reports whether v was stored.
func Provide[T any](r *Registry, k *Key[T], v T) bool {
	e := r.entry(k)
	stored := false
	e.once.Do(func() {
		e.value = v
		stored = true
		r.mu.Lock()
		r.order = append(r.order, k)
		r.mu.Unlock()
	})
	return stored
}

// Len returns the number of resources built or provided.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

type releaser interface {
	Release()
}

// Close releases every resource that has a Release method, in reverse
// creation order, and empties the registry.
func (r *Registry) Close() {
	r.mu.Lock()
	order := r.order
	entries := r.entries
	r.order = nil
	r.entries = make(map[any]*entry)
	r.mu.Unlock()

	for i := len(order) - 1; i >= 0; i-- {
		if rel, ok := entries[order[i]].value.(releaser); ok {
			rel.Release()
		}
	}
}
