package notify

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// HandleGenerator produces registry keys for watcher registrations. Tokens
// are opaque and must not repeat within a process.
type HandleGenerator interface {
	Next() string
}

// UUIDGenerator issues UUIDv7 handles.
type UUIDGenerator struct{}

func (UUIDGenerator) Next() string {
	return uuid.Must(uuid.NewV7()).String()
}

// SequenceGenerator issues prefix-numbered handles starting at 1. Output is
// deterministic, which makes it the generator of choice in tests.
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator creates a SequenceGenerator whose handles begin with prefix.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) Next() string {
	return g.prefix + strconv.FormatUint(g.next.Add(1), 10)
}
