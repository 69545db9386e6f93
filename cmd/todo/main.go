package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"todomvc/internal/config"
	"todomvc/internal/logging"
	"todomvc/internal/storage"
	"todomvc/internal/todo"
	"todomvc/internal/ui"
)

func main() {
	configPath := flag.String("config", config.ResolveConfigPath(), "path to the TOML config file")
	flag.Parse()

	cfg, err := config.LoadOrCreate(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		logger = log.New(io.Discard)
	} else {
		defer closer.Close()
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open store", "path", cfg.DBPath, "err", err)
		fmt.Printf("failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	slot := storage.NewSlot(store, cfg.StorageKey, logger)
	entries, err := slot.Load(context.Background())
	if err != nil {
		logger.Error("load entries", "key", cfg.StorageKey, "err", err)
		fmt.Printf("failed to load todos: %v\n", err)
		os.Exit(1)
	}

	state := todo.New(entries)
	filter, err := todo.ParseFilter(cfg.DefaultFilter)
	if err != nil {
		logger.Warn("bad default_filter, showing all", "err", err)
	}
	state.SetFilter(filter)
	logger.Info("started", "config", *configPath, "db", cfg.DBPath, "entries", state.Total())

	if err := ui.Run(state, slot, cfg, logger); err != nil {
		logger.Error("ui exited", "err", err)
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
