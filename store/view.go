package store

import "iter"

// View is the read-only surface of a Store. Watchers receive a View bound to
// the live store: reads always reflect the state at the moment of the call.
type View[K comparable, R any] interface {
	// Get returns the value stored in field for id.
	Get(id K, field Field) (R, bool)
	// Has reports whether a Slot exists for id.
	Has(id K) bool
	// Slot returns a copy of the Slot stored for id.
	Slot(id K) (Slot[R], bool)
	// Keys returns the stored identifiers in insertion order.
	Keys() []K
	// All iterates over the Slots present when iteration starts.
	All() iter.Seq2[K, Slot[R]]
	// Len returns the number of Slots.
	Len() int
}
