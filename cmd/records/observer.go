package main

import (
	"log/slog"

	"github.com/tailored-agentic-units/records/manager"
	"github.com/tailored-agentic-units/records/observability"
)

// newObserver resolves the observer named in cfg. With verbose set, events
// are also written to logger unless cfg already names the slog observer.
func newObserver(cfg *manager.Config, logger *slog.Logger, verbose bool) (observability.Observer, error) {
	name := cfg.Observer
	if name == "" {
		name = observability.ObserverNoop
	}

	named, err := observability.GetObserver(name)
	if err != nil {
		return nil, err
	}

	if !verbose || name == observability.ObserverSlog {
		return named, nil
	}
	return observability.NewMultiObserver(named, observability.NewSlogObserver(logger)), nil
}
