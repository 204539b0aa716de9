package main

import (
	"log/slog"
	"net/http"
	"os"
	"sync"

	"go-tv-builder/internal/canvas"
	"go-tv-builder/internal/config"
	"go-tv-builder/internal/library"
	"go-tv-builder/internal/pagemanager"
	"go-tv-builder/internal/storage"
	"go-tv-builder/internal/tvconfig"

	"github.com/lmittmann/tint"
)

// Editing canvas dimensions, matching the simulated TV surface.
const (
	canvasWidth  = 1280
	canvasHeight = 720
)

// adminApplication holds the application-wide dependencies for the admin
// server. One operator edits at a time, but net/http still serves their
// requests on separate goroutines; mu serializes all access to the mutable
// in-memory state (the live TV config, the catalogs and the open sessions).
type adminApplication struct {
	logger  *slog.Logger
	store   storage.DataStore
	pages   *pagemanager.PageManager
	library *library.Library
	weblib  *library.WebLibrary

	mu       sync.Mutex
	tv       tvconfig.TemplateData
	sessions map[string]*canvas.Canvas // open editor sessions keyed by slug
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: cfg.SlogLevel()}))

	store, err := storage.NewJSONStore(cfg.DataDir)
	if err != nil {
		logger.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	logger.Info("Using data directory", "path", store.GetBasePath())

	app := &adminApplication{
		logger:   logger,
		store:    store,
		pages:    pagemanager.NewManager(store, logger),
		library:  library.New(logger),
		weblib:   library.NewWebLibrary(logger),
		tv:       tvconfig.Default(),
		sessions: make(map[string]*canvas.Canvas),
	}

	addr := ":" + cfg.AdminPort
	logger.Info("Starting admin server", "address", "http://localhost"+addr)
	if err := http.ListenAndServe(addr, app.routes()); err != nil {
		logger.Error("Admin server failed", "error", err)
		os.Exit(1)
	}
}
