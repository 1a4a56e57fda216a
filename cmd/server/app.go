package main

import (
	"fmt"
	"log/slog"

	"github.com/cardforge/cardforge/internal/config"
	"github.com/cardforge/cardforge/internal/editor"
	"github.com/cardforge/cardforge/internal/platform/sqlite"
	"github.com/cardforge/cardforge/internal/service"
	"github.com/cardforge/cardforge/internal/store"
	"github.com/cardforge/cardforge/internal/study"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Persistence gateway and stores
	gateway    *sqlite.KV
	sets       store.CollectionStore
	prefs      *store.PreferenceStore
	collection *service.CollectionService

	// Single-user editor state and active study sessions
	editor   *editor.Editor
	sessions *study.Registry
}

// newApplication opens the persistence gateway and wires all dependencies.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	gateway, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %q: %w", cfg.Store.Path, err)
	}

	sets := store.NewKVCollectionStore(gateway, logger)

	return &application{
		config:     cfg,
		logger:     logger,
		gateway:    gateway,
		sets:       sets,
		prefs:      store.NewPreferenceStore(gateway),
		collection: service.NewCollectionService(sets, logger),
		editor:     editor.New(),
		sessions:   study.NewRegistry(),
	}, nil
}

// cleanup releases the application's resources. Safe to call once after the
// server stops.
func (app *application) cleanup() {
	if app.gateway != nil {
		if err := app.gateway.Close(); err != nil {
			app.logger.Error("failed to close store", "error", err)
		}
	}
}
