// SPDX-License-Identifier: MIT

// Package registry provides an append-only mapping from a strategy name to
// a function, so callers can pick a scorer by name at runtime.
//
// Contract:
//   - Register is "insert if absent": the first registration of a name wins
//     and later registrations of the same name are ignored.
//   - Entries are never removed.
//   - Resolve of an unknown name fails with ErrStrategyNotFound; there is
//     no default fallback.
//
// Registrations normally happen in package init functions. The registry is
// still guarded by a RWMutex so late registration from tests or plugins is
// race-free.
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// ErrStrategyNotFound is returned by Resolve for an unregistered name.
var ErrStrategyNotFound = errors.New("registry: strategy not found")

// Registry maps names to values of type F (usually a scoring func type).
type Registry[F any] struct {
	family string

	mu      sync.RWMutex
	entries map[string]F
	order   []string // registration order, for deterministic listing
}

// New returns an empty registry. family labels errors and log lines,
// e.g. "topology" or "embedding".
func New[F any](family string) *Registry[F] {
	return &Registry[F]{
		family:  family,
		entries: make(map[string]F),
	}
}

// Family returns the label given to New.
func (r *Registry[F]) Family() string { return r.family }

// Register inserts fn under name unless the name is already taken.
// It reports whether the entry was inserted.
//
// An empty name is a programmer error and panics, as do option
// constructors elsewhere in this module.
func (r *Registry[F]) Register(name string, fn F) bool {
	if name == "" {
		panic(fmt.Sprintf("registry(%s): Register with empty name", r.family))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; ok {
		slog.Debug("duplicate registration ignored", "family", r.family, "name", name)
		return false
	}
	r.entries[name] = fn
	r.order = append(r.order, name)

	return true
}

// MustRegister is Register for built-ins: a name that is already taken
// panics instead of being ignored.
func (r *Registry[F]) MustRegister(name string, fn F) {
	if !r.Register(name, fn) {
		panic(fmt.Sprintf("registry(%s): %q already registered", r.family, name))
	}
}

// Resolve returns the function registered under name.
func (r *Registry[F]) Resolve(name string) (F, error) {
	r.mu.RLock()
	fn, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		var zero F
		return zero, fmt.Errorf("%s: %q: %w", r.family, name, ErrStrategyNotFound)
	}

	return fn, nil
}

// Has reports whether name is registered.
func (r *Registry[F]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]

	return ok
}

// Names returns the registered names sorted lexicographically.
func (r *Registry[F]) Names() []string {
	r.mu.RLock()
	out := append([]string(nil), r.order...)
	r.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Len returns the number of registered names.
func (r *Registry[F]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
