package manager

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailored-agentic-units/records/notify"
	"github.com/tailored-agentic-units/records/observability"
)

// Config holds initialization parameters for a Manager.
type Config struct {
	Observer string        `json:"observer,omitempty"` // Name in the observability registry.
	Notify   notify.Config `json:"notify"`
}

// DefaultConfig returns a Config that discards events and issues UUID handles.
func DefaultConfig() Config {
	return Config{
		Observer: observability.ObserverNoop,
		Notify:   notify.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.Notify.Merge(&source.Notify)

	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// LoadConfig reads a JSON config file and merges it over DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
