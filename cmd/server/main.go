// Package main is the entry point for the approuter site server.
// It serves two static pages, Home on "/" and About on "/about", each linking
// to the other, plus a JSON health endpoint on "/health".
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/approuter/internal/config"
	"github.com/aristath/approuter/internal/server"
	"github.com/aristath/approuter/pkg/embedded"
	"github.com/aristath/approuter/pkg/logger"
)

// main loads configuration, builds the server from the embedded templates,
// serves until SIGINT or SIGTERM, then shuts down gracefully.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	logger.SetGlobalLogger(log)

	log.Info().Str("version", cfg.Version).Bool("dev_mode", cfg.DevMode).Msg("Starting approuter")

	templates, err := embedded.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open embedded templates")
	}

	srv, err := server.New(server.Config{
		Log:       log,
		Config:    cfg,
		Templates: templates,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// In-flight requests get up to 10 seconds to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
