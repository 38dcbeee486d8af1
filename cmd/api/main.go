// Command api is the Worth The Bag API server.
//
// Usage:
//
//	bag-api
//	ROSTER_CSV=https://example.com/players.csv API_PORT=8080 bag-api

// @title Worth The Bag API
// @version 1.0.0
// @description NBA salary-versus-performance API. Serves normalized roster records, salary verdicts, advanced-metric labels and player profiles from a French-formatted CSV loaded at startup.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name Worth The Bag
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/worth-the-bag/internal/api"
	"github.com/albapepper/worth-the-bag/internal/cache"
	"github.com/albapepper/worth-the-bag/internal/config"
	"github.com/albapepper/worth-the-bag/internal/provider/csvfile"
	"github.com/albapepper/worth-the-bag/internal/roster"

	_ "github.com/albapepper/worth-the-bag/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Load the roster once; it is read-only for the life of the process.
	src := csvfile.NewSource(cfg.RosterCSV, cfg.SourceTimeout, logger)
	players, result, err := roster.Load(ctx, src, logger)
	if err != nil {
		logger.Error("Failed to load roster", "source", src.String(), "error", err)
		os.Exit(1)
	}

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Create router
	router := api.NewRouter(players, result, appCache, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Worth The Bag API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort),
			"dashboard", fmt.Sprintf("http://localhost:%d/dashboard", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
