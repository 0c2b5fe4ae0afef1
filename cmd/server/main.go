package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/config"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/handlers"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/seed"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/service"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/storage"
	"github.com/Lixing-Zhang/grand-hotel-dining/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting grand hotel dining server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"storage", cfg.Storage.Driver,
	)

	ctx := context.Background()

	seeds := seed.Default()
	if cfg.SeedFile != "" {
		seeds, err = seed.LoadFile(cfg.SeedFile)
		if err != nil {
			log.Error("failed to load seed file", "path", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
	}

	backend, err := storage.Open(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	adapter := storage.NewAdapter(backend, log, time.Duration(cfg.Storage.Timeout)*time.Second)
	defer func() {
		if err := adapter.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	// State store, loaded from storage before anything subscribes
	store := state.NewStore(state.Initial(), log)
	service.Bootstrap(ctx, adapter, store, seeds, log)
	detach := service.NewPersister(adapter, log).Attach(store)
	defer detach()

	router := handlers.NewRouter(handlers.RouterConfig{
		Store:          store,
		Catalog:        service.NewCatalogService(store, log),
		Cart:           service.NewCartService(store, log),
		Orders:         service.NewOrderService(store, log),
		Auth:           service.NewAuthService(store, adapter, log),
		StorageDriver:  cfg.Storage.Driver,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: 60 * time.Second,
		Logger:         log,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("server failed to start", "error", err)
		return
	}

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return
	}

	log.Info("server stopped gracefully")
}
