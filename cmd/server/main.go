package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/catalog"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/metrics"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/middleware"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/server"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/pkg/logger"
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

	log.Info("starting catalog api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"request_timeout", cfg.Server.RequestTimeout.String(),
		"latency_enabled", cfg.Latency.Enabled,
	)

	// Build the catalog once; it is read-only from here on
	raw, err := catalog.LoadFile(cfg.Catalog.DataFile)
	if err != nil {
		log.Error("failed to load product dataset", "file", cfg.Catalog.DataFile, "error", err)
		os.Exit(1)
	}
	cat := catalog.Normalize(raw)
	metrics.CatalogProducts.Set(float64(len(cat.Products)))
	metrics.CatalogCategories.Set(float64(len(cat.Categories)))

	log.Info("catalog loaded",
		"products", len(cat.Products),
		"categories", len(cat.Categories),
	)

	deps := server.Deps{
		Catalog:        cat,
		Logger:         log,
		StaticRoot:     cfg.Static.Root,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
	if cfg.Latency.Enabled {
		deps.APIDelay = middleware.NewBandedDelay(middleware.APIBands, nil)
		deps.AssetDelay = middleware.NewBandedDelay(middleware.AssetBands, nil)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.NewRouter(deps),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
