// Package store keeps records keyed by identifier, each with an independent
// committed value and draft value.
//
// A Store knows nothing about watchers; it is the leaf component composed by
// the manager package. Absence is reported through comma-ok returns and every
// operation on a null or unknown identifier is a no-op.
package store

import (
	"iter"
	"slices"
	"sync"

	"github.com/tailored-agentic-units/records/record"
)

// Store maps identifiers to Slots. All methods are safe for concurrent use,
// and no lock is held while a caller-supplied function runs.
type Store[K comparable, R record.Record[K]] struct {
	slots map[K]*Slot[R]
	order []K
	mu    sync.RWMutex
}

var _ View[int64, record.Entity] = (*Store[int64, record.Entity])(nil)

// New creates a Store seeded with records as committed values. When seed
// contains the same identifier more than once, the last record wins.
func New[K comparable, R record.Record[K]](seed []R) *Store[K, R] {
	s := &Store[K, R]{
		slots: make(map[K]*Slot[R], len(seed)),
		order: make([]K, 0, len(seed)),
	}
	for _, r := range seed {
		if !record.IsNull(r.RecordID()) {
			s.put(r, Committed)
		}
	}
	return s
}

func (s *Store[K, R]) Get(id K, field Field) (R, bool) {
	var zero R
	if record.IsNull(id) {
		return zero, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[id]
	if !ok {
		return zero, false
	}
	return slot.Get(field)
}

// Set writes r into field of its Slot, creating the Slot when missing. The
// other field is left untouched. Records with a null identifier are not
// stored; Set reports whether r was written.
func (s *Store[K, R]) Set(r R, field Field) bool {
	if record.IsNull(r.RecordID()) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(r, field)
	return true
}

// SetList writes each record into its committed field, creating Slots as
// needed. Draft values of existing Slots are never touched. Returns the
// number of records written.
func (s *Store[K, R]) SetList(records []R) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, r := range records {
		if record.IsNull(r.RecordID()) {
			continue
		}
		s.put(r, Committed)
		n++
	}
	return n
}

// Delete clears the draft of id's Slot when field is Draft, keeping the Slot
// even if its committed value is absent. When field is Committed the whole
// Slot is removed. Reports whether a Slot existed for id.
func (s *Store[K, R]) Delete(id K, field Field) bool {
	if record.IsNull(id) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return false
	}

	if field == Draft {
		slot.clear(Draft)
		return true
	}

	delete(s.slots, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

func (s *Store[K, R]) Has(id K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.slots[id]
	return ok
}

func (s *Store[K, R]) Slot(id K) (Slot[R], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[id]
	if !ok {
		return Slot[R]{}, false
	}
	return *slot, true
}

func (s *Store[K, R]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// All takes a snapshot of the Slots and yields them in insertion order. The
// yield function may mutate the Store.
func (s *Store[K, R]) All() iter.Seq2[K, Slot[R]] {
	return func(yield func(K, Slot[R]) bool) {
		s.mu.RLock()
		keys := slices.Clone(s.order)
		slots := make([]Slot[R], len(keys))
		for i, id := range keys {
			slots[i] = *s.slots[id]
		}
		s.mu.RUnlock()

		for i, id := range keys {
			if !yield(id, slots[i]) {
				return
			}
		}
	}
}

func (s *Store[K, R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

func (s *Store[K, R]) put(r R, field Field) {
	id := r.RecordID()
	slot, ok := s.slots[id]
	if !ok {
		slot = &Slot[R]{}
		s.slots[id] = slot
		s.order = append(s.order, id)
	}
	slot.put(field, r)
}
