// Package main is the entry point for Lucky Battlefield.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/luckybattlefield/internal/game"
	"github.com/samdwyer/luckybattlefield/internal/logging"
	"github.com/samdwyer/luckybattlefield/internal/telemetry"
	"github.com/samdwyer/luckybattlefield/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []game.Option{game.WithLogger(logger)}
	if cfg.Telemetry.Enabled {
		telemetry.ConfigureHoneycomb(cfg.Telemetry.APIKey, cfg.Telemetry.Dataset)
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			logger.Warn("telemetry setup failed", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warn("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	} else {
		opts = append(opts, game.WithTracer(telemetry.NoopTracer()))
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Close()

	session := game.New(cfg, opts...)
	if err := ui.NewApp(screen, session, logger).Run(ctx); err != nil && ctx.Err() == nil {
		screen.Close()
		log.Fatalf("Game error: %v", err)
	}
}
