// FILE: lixenwraith/appconfig/value.go
package appconfig

import "sync"

// Value is a shared handle to a settings value. Every holder of the same
// *Value observes updates made through it, including those made by Load.
type Value[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewValue returns a handle holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns a copy of the current value.
// Reference-typed fields (maps, slices, pointers) still alias the stored value.
func (h *Value[T]) Get() T {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.v
}

// Set replaces the current value in place.
func (h *Value[T]) Set(v T) {
	h.mu.Lock()
	h.v = v
	h.mu.Unlock()
}

// Update runs fn with exclusive access to the stored value.
func (h *Value[T]) Update(fn func(v *T)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(&h.v)
}

// View runs fn with shared read access to the stored value.
// fn must not retain the pointer or modify through it.
func (h *Value[T]) View(fn func(v *T)) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	fn(&h.v)
}
