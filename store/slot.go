package store

// Field selects one side of a Slot.
type Field int

const (
	// Committed is the authoritative current value of a record.
	Committed Field = iota
	// Draft is an in-progress edit, independent of the committed value.
	Draft
)

func (f Field) String() string {
	if f == Draft {
		return "draft"
	}
	return "committed"
}

// Slot holds the committed and draft values stored under one identifier.
// Either side may be absent. Slots handed out by a Store are copies.
type Slot[R any] struct {
	committed    R
	draft        R
	hasCommitted bool
	hasDraft     bool
}

// Committed returns the committed value, if present.
func (s Slot[R]) Committed() (R, bool) {
	return s.committed, s.hasCommitted
}

// Draft returns the draft value, if present.
func (s Slot[R]) Draft() (R, bool) {
	return s.draft, s.hasDraft
}

// Get returns the value for the given field, if present.
func (s Slot[R]) Get(field Field) (R, bool) {
	if field == Draft {
		return s.Draft()
	}
	return s.Committed()
}

func (s *Slot[R]) put(field Field, r R) {
	if field == Draft {
		s.draft, s.hasDraft = r, true
		return
	}
	s.committed, s.hasCommitted = r, true
}

func (s *Slot[R]) clear(field Field) {
	var zero R
	if field == Draft {
		s.draft, s.hasDraft = zero, false
		return
	}
	s.committed, s.hasCommitted = zero, false
}
