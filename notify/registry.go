// Package notify keeps the set of watchers interested in a store and calls
// each of them, in registration order, when told the store has changed.
package notify

import (
	"slices"
	"sync"

	"github.com/tailored-agentic-units/records/store"
)

// Watcher is called with a live read-only view of the store after a change.
type Watcher[K comparable, R any] func(view store.View[K, R])

// Registry holds watchers under unique handles.
//
// NotifyAll dispatches to the watchers registered when the pass starts.
// Watchers may register, unregister, or mutate the store while being
// called: registry changes take effect on the next pass, store changes are
// visible to the watchers that follow in the current pass.
type Registry[K comparable, R any] struct {
	view     store.View[K, R]
	handles  HandleGenerator
	watchers map[string]Watcher[K, R]
	order    []string
	mu       sync.Mutex
}

// NewRegistry creates a Registry that hands view to its watchers. A nil
// generator falls back to UUIDGenerator.
func NewRegistry[K comparable, R any](view store.View[K, R], handles HandleGenerator) *Registry[K, R] {
	if handles == nil {
		handles = UUIDGenerator{}
	}
	return &Registry[K, R]{
		view:     view,
		handles:  handles,
		watchers: make(map[string]Watcher[K, R]),
	}
}

// Watch registers fn and returns its handle along with a function that
// removes the registration. Calling unwatch more than once is harmless.
// A nil fn is not registered.
func (r *Registry[K, R]) Watch(fn Watcher[K, R]) (handle string, unwatch func()) {
	if fn == nil {
		return "", func() {}
	}

	handle = r.handles.Next()

	r.mu.Lock()
	r.watchers[handle] = fn
	r.order = append(r.order, handle)
	r.mu.Unlock()

	return handle, func() { r.remove(handle) }
}

// NotifyAll calls every registered watcher with the live view and returns
// how many were called.
func (r *Registry[K, R]) NotifyAll() int {
	r.mu.Lock()
	pending := make([]Watcher[K, R], 0, len(r.order))
	for _, h := range r.order {
		pending = append(pending, r.watchers[h])
	}
	r.mu.Unlock()

	for _, fn := range pending {
		fn(r.view)
	}
	return len(pending)
}

// Len returns the number of registered watchers.
func (r *Registry[K, R]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.watchers)
}

func (r *Registry[K, R]) remove(handle string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.watchers[handle]; !ok {
		return
	}
	delete(r.watchers, handle)
	if i := slices.Index(r.order, handle); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
}
