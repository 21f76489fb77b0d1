package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tailored-agentic-units/records/manager"
	"github.com/tailored-agentic-units/records/observability"
	"github.com/tailored-agentic-units/records/record"
	"github.com/tailored-agentic-units/records/store"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to config JSON file")
		seedFile   = flag.String("seed", "", "Path to JSON array of initial records (required)")
		scriptFile = flag.String("script", "", "Path to JSON array of operations to apply")
		handles    = flag.String("handles", "", "Watcher handle generator: uuid or sequence (overrides config)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	if *seedFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: records -seed <file> [-script <file>] [-config <file>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := manager.DefaultConfig()
	if *configFile != "" {
		loaded, err := manager.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if *handles != "" {
		cfg.Notify.Handles = *handles
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	observability.RegisterObserver(observability.ObserverSlog, observability.NewSlogObserver(logger))

	observer, err := newObserver(&cfg, logger, *verbose)
	if err != nil {
		log.Fatalf("Failed to resolve observer: %v", err)
	}

	seed, err := record.LoadEntities(*seedFile)
	if err != nil {
		log.Fatalf("Failed to load seed records: %v", err)
	}

	var steps []step
	if *scriptFile != "" {
		steps, err = loadScript(*scriptFile)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
	}

	m, err := manager.New[int64](&cfg, seed, manager.WithObserver[int64, record.Entity](observer))
	if err != nil {
		log.Fatalf("Failed to create record manager: %v", err)
	}

	unwatch := m.Watch(func(view store.View[int64, record.Entity]) {
		logger.Info("records changed", "count", view.Len())
	})
	defer unwatch()

	runScript(m, steps)

	fmt.Printf("Records: %d\n", m.Count())
	if err := printState(os.Stdout, m.View()); err != nil {
		log.Fatalf("Failed to print records: %v", err)
	}
}
