// Package manager is the entry point to the record store. A Manager composes
// a store.Store with a notify.Registry: single-record writes notify every
// watcher, bulk refreshes through SetList do not.
//
//	cfg := manager.DefaultConfig()
//	m, err := manager.New[int64](&cfg, seed)
//	unwatch := m.Watch(func(view store.View[int64, record.Entity]) { ... })
//	m.Set(record.NewEntity(3, map[string]any{"name": "baz"}), store.Committed)
package manager

import (
	"context"
	"fmt"
	"sync"

	"github.com/tailored-agentic-units/records/notify"
	"github.com/tailored-agentic-units/records/observability"
	"github.com/tailored-agentic-units/records/record"
	"github.com/tailored-agentic-units/records/store"
)

// Option configures a Manager after config-driven initialization.
// Applied by New before the Manager is returned; overrides replace
// config-created defaults.
type Option[K comparable, R record.Record[K]] func(*Manager[K, R])

// WithObserver overrides the observer named in Config.
func WithObserver[K comparable, R record.Record[K]](o observability.Observer) Option[K, R] {
	return func(m *Manager[K, R]) {
		if o != nil {
			m.observer = o
		}
	}
}

// WithHandleGenerator overrides the handle generator named in Config.
func WithHandleGenerator[K comparable, R record.Record[K]](g notify.HandleGenerator) Option[K, R] {
	return func(m *Manager[K, R]) {
		m.registry = notify.NewRegistry[K, R](m.store, g)
	}
}

// Manager owns the records and the watchers observing them.
type Manager[K comparable, R record.Record[K]] struct {
	store    *store.Store[K, R]
	registry *notify.Registry[K, R]
	observer observability.Observer
}

// New creates a Manager seeded with records as committed values. Options
// are applied after the config-created collaborators are in place.
func New[K comparable, R record.Record[K]](cfg *Config, seed []R, opts ...Option[K, R]) (*Manager[K, R], error) {
	handles, err := notify.NewHandleGenerator(&cfg.Notify)
	if err != nil {
		return nil, fmt.Errorf("failed to create handle generator: %w", err)
	}

	name := cfg.Observer
	if name == "" {
		name = observability.ObserverNoop
	}
	observer, err := observability.GetObserver(name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	s := store.New[K](seed)
	m := &Manager[K, R]{
		store:    s,
		registry: notify.NewRegistry[K, R](s, handles),
		observer: observer,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Get returns the value held in field for id. A null or unknown id, or an
// empty field, reports false.
func (m *Manager[K, R]) Get(id K, field store.Field) (R, bool) {
	return m.store.Get(id, field)
}

// Set upserts r into field and notifies every watcher, even when the value
// is unchanged. A record with a null id is rejected without notification.
func (m *Manager[K, R]) Set(r R, field store.Field) {
	if !m.store.Set(r, field) {
		m.emit(EventRejected, observability.LevelWarning, "manager.Set", map[string]any{
			"field":  field.String(),
			"reason": "null id",
		})
		return
	}

	m.emit(EventSet, observability.LevelInfo, "manager.Set", map[string]any{
		"id":    r.RecordID(),
		"field": field.String(),
	})
	m.notify()
}

// SetList upserts records as committed values without notifying watchers.
// Callers that need watchers to see a bulk load call Notify afterwards.
func (m *Manager[K, R]) SetList(records []R) {
	n := m.store.SetList(records)

	if skipped := len(records) - n; skipped > 0 {
		m.emit(EventRejected, observability.LevelWarning, "manager.SetList", map[string]any{
			"records": skipped,
			"reason":  "null id",
		})
	}
	m.emit(EventSetList, observability.LevelInfo, "manager.SetList", map[string]any{
		"records": n,
	})
}

// Delete clears the draft of id (field Draft) or removes the record entirely
// (field Committed). Watchers are notified only when id was present.
func (m *Manager[K, R]) Delete(id K, field store.Field) {
	if !m.store.Delete(id, field) {
		return
	}

	m.emit(EventDelete, observability.LevelInfo, "manager.Delete", map[string]any{
		"id":    id,
		"field": field.String(),
	})
	m.notify()
}

// Watch registers fn and returns a function that unregisters it. The
// returned function may be called any number of times. A nil fn is not
// registered.
func (m *Manager[K, R]) Watch(fn notify.Watcher[K, R]) func() {
	if fn == nil {
		return func() {}
	}

	handle, unwatch := m.registry.Watch(fn)

	m.emit(EventWatch, observability.LevelVerbose, "manager.Watch", map[string]any{
		"handle": handle,
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			unwatch()
			m.emit(EventUnwatch, observability.LevelVerbose, "manager.Unwatch", map[string]any{
				"handle": handle,
			})
		})
	}
}

// Notify calls every watcher with the current state.
func (m *Manager[K, R]) Notify() {
	m.notify()
}

// Count returns the number of stored records, including draft-only and
// empty Slots.
func (m *Manager[K, R]) Count() int {
	return m.store.Len()
}

// View returns the live read-only view handed to watchers.
func (m *Manager[K, R]) View() store.View[K, R] {
	return m.store
}

func (m *Manager[K, R]) notify() {
	n := m.registry.NotifyAll()

	m.emit(EventNotify, observability.LevelVerbose, "manager.notify", map[string]any{
		"watchers": n,
		"records":  m.store.Len(),
	})
}

func (m *Manager[K, R]) emit(typ observability.EventType, level observability.Level, source string, data map[string]any) {
	m.observer.OnEvent(context.Background(), observability.NewEvent(typ, level, source, data))
}
