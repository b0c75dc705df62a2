package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reshetovitsme/telegram-notifier/internal/di"
	historyService "github.com/reshetovitsme/telegram-notifier/internal/modules/history/service"
	"github.com/reshetovitsme/telegram-notifier/internal/shared/config"
	httpServer "github.com/reshetovitsme/telegram-notifier/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Text logs to stdout, errors additionally as JSON to stderr
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	logger := slog.New(slogmulti.Fanout(textHandler, jsonHandler))
	slog.SetDefault(logger)

	injector, err := di.SetupWith(func() (*config.Config, error) { return cfg, nil })
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pruner, err := do.Invoke[*historyService.Pruner](injector)
	if err != nil {
		slog.Error("Failed to create history pruner", "error", err)
		os.Exit(1)
	}
	if err := pruner.Start(ctx); err != nil {
		slog.Error("Failed to start history pruner", "error", err)
		os.Exit(1)
	}

	server, err := do.Invoke[*httpServer.Server](injector)
	if err != nil {
		slog.Error("Failed to create HTTP server", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := server.Start(); err != nil {
			slog.Error("Failed to start HTTP server", "error", err)
			cancel()
		}
	}()

	slog.Info("Application started", "port", cfg.HTTPPort, "env", cfg.AppEnv)
	slog.Info("Press Ctrl+C to stop")

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := di.Shutdown(shutdownCtx, injector); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}
}
