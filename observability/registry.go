package observability

import (
	"fmt"
	"log/slog"
	"sync"
)

// Names of the observers registered at startup.
const (
	ObserverNoop = "noop"
	ObserverSlog = "slog"
)

var (
	observers = map[string]Observer{
		ObserverNoop: NoOpObserver{},
		ObserverSlog: NewSlogObserver(slog.Default()),
	}
	mutex sync.RWMutex
)

// GetObserver looks up a named observer.
func GetObserver(name string) (Observer, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	obs, exists := observers[name]
	if !exists {
		return nil, fmt.Errorf("unknown observer: %s", name)
	}
	return obs, nil
}

// RegisterObserver adds or replaces a named observer.
func RegisterObserver(name string, observer Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	observers[name] = observer
}
