/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package registry provides a process-wide unique-name registry. The actor
// runtime uses it to reserve names at spawn time and release them on
// termination; uniqueness is enforced here, not by the actor core.
package registry

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateName is returned when registering a name that is already taken.
var ErrDuplicateName = errors.New("name is already registered")

// NewErrDuplicateName formats an ErrDuplicateName with the given name.
func NewErrDuplicateName(name string) error {
	return fmt.Errorf("name=(%s) %w", name, ErrDuplicateName)
}

// Registry is a concurrency-safe unique-name registry mapping names to
// values of type V. The zero value is not usable; create instances with New.
type Registry[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// New creates an empty registry.
func New[V any]() *Registry[V] {
	return &Registry[V]{
		entries: make(map[string]V),
	}
}

// Register reserves the given name for the given value. It fails with
// ErrDuplicateName when the name is already taken; the existing registration
// is left untouched.
func (r *Registry[V]) Register(name string, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.entries[name]; taken {
		return NewErrDuplicateName(name)
	}
	r.entries[name] = value
	return nil
}

// Lookup returns the value registered under the given name. The boolean is
// false when the name is unknown.
func (r *Registry[V]) Lookup(name string) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.entries[name]
	return value, ok
}

// Unregister releases the given name. Unknown names are ignored.
func (r *Registry[V]) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Names returns a snapshot of all registered names.
func (r *Registry[V]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered names.
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
