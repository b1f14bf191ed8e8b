package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/projup/projup/pkg/errors"
)

// Registry holds items of one kind keyed by name. It is safe for
// concurrent use.
type Registry[T any] struct {
	kind  string
	mu    sync.RWMutex
	items map[string]T
}

// New returns an empty registry. kind names the items in error messages,
// e.g. "project" or "variable".
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, items: make(map[string]T)}
}

// Kind returns the item kind given to New.
func (r *Registry[T]) Kind() string {
	return r.kind
}

// Register adds item under name. Names are unique and never empty.
func (r *Registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%s %s is listed twice", r.kind, name).
			WithDetail("name", name)
	}
	r.items[name] = item
	return nil
}

// Get returns the item registered under name.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "unknown %s %s", r.kind, name).
			WithDetail("name", name)
	}
	return item, nil
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

// Remove deletes name and returns the item it held.
func (r *Registry[T]) Remove(name string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "unknown %s %s", r.kind, name).
			WithDetail("name", name)
	}
	delete(r.items, name)
	return item, nil
}

// Rename moves the item under from to to, replacing its value with item.
// Renaming onto an existing name other than from fails and leaves the
// registry unchanged.
func (r *Registry[T]) Rename(from, to string, item T) error {
	if to == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[from]; !exists {
		return errors.Newf(errors.ErrNotFound, "unknown %s %s", r.kind, from).
			WithDetail("name", from)
	}
	if _, exists := r.items[to]; exists && to != from {
		return errors.Newf(errors.ErrAlreadyExists, "%s %s is listed twice", r.kind, to).
			WithDetail("name", to)
	}
	delete(r.items, from)
	r.items[to] = item
	return nil
}

// List returns the registered names, sorted.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered items.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister is Register for package init, where a clash is a
// programming error.
func MustRegister[T any](r *Registry[T], name string, item T) {
	if err := r.Register(name, item); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}
