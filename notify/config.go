package notify

import "fmt"

// Handle generator names accepted by Config.
const (
	HandlesUUID     = "uuid"
	HandlesSequence = "sequence"
)

const sequencePrefix = "watch-"

// Config holds registry initialization parameters.
type Config struct {
	Handles string `json:"handles,omitempty"` // "uuid" (default) or "sequence".
}

// DefaultConfig returns the default registry configuration.
func DefaultConfig() Config {
	return Config{Handles: HandlesUUID}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Handles != "" {
		c.Handles = source.Handles
	}
}

// NewHandleGenerator creates the HandleGenerator named by cfg.
func NewHandleGenerator(cfg *Config) (HandleGenerator, error) {
	switch cfg.Handles {
	case "", HandlesUUID:
		return UUIDGenerator{}, nil
	case HandlesSequence:
		return NewSequenceGenerator(sequencePrefix), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownGenerator, cfg.Handles)
	}
}
