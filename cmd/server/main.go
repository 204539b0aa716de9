package main

import (
	"net/http"
	"os"

	"go-tv-builder/internal/config"
	"go-tv-builder/internal/pagemanager"
	"go-tv-builder/internal/storage"

	"github.com/lmittmann/tint"
	"log/slog"
)

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

	manager := pagemanager.NewManager(store, logger)

	app := &application{
		logger:    logger,
		pages:     manager,
		staticDir: cfg.StaticDir,
	}

	addr := ":" + cfg.Port
	logger.Info("Starting public server", "address", "http://localhost"+addr)
	if err := http.ListenAndServe(addr, app.routes()); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
