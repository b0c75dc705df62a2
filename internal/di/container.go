package di

import (
	"context"
	"log/slog"

	feedService "github.com/reshetovitsme/telegram-notifier/internal/modules/feed/service"
	historyRepo "github.com/reshetovitsme/telegram-notifier/internal/modules/history/repository"
	historyService "github.com/reshetovitsme/telegram-notifier/internal/modules/history/service"
	notificationService "github.com/reshetovitsme/telegram-notifier/internal/modules/notification/service"
	profileRepo "github.com/reshetovitsme/telegram-notifier/internal/modules/profile/repository"
	profileService "github.com/reshetovitsme/telegram-notifier/internal/modules/profile/service"
	"github.com/reshetovitsme/telegram-notifier/internal/shared/config"
	httpServer "github.com/reshetovitsme/telegram-notifier/internal/transport/http"
	"github.com/reshetovitsme/telegram-notifier/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	return SetupWith(config.Load)
}

// SetupWith initializes the container with a custom config loader
func SetupWith(load func() (*config.Config, error)) (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Profile Repository
	do.Provide(injector, func(i do.Injector) (profileRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := profileRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize profile repository").Wrap(err)
		}
		return repo, nil
	})

	// Register History Repository
	do.Provide(injector, func(i do.Injector) (historyRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := historyRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize history repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Profile Service, seeded from telegram_* config keys
	do.Provide(injector, func(i do.Injector) (*profileService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		svc := profileService.New(do.MustInvoke[profileRepo.Repository](i))

		if settings, ok := cfg.SeedSettings(); ok {
			if err := svc.SeedProfile(config.SeedProfileName, settings); err != nil {
				return nil, oops.With("profile", config.SeedProfileName, "context", "failed to seed profile").Wrap(err)
			}
			slog.Info("Seeded profile from config", "profile", config.SeedProfileName)
		}
		return svc, nil
	})

	// Register Telegram Proxy
	do.Provide(injector, func(i do.Injector) (*telegram.Proxy, error) {
		cfg := do.MustInvoke[*config.Config](i)
		proxy := telegram.NewProxy(cfg.TelegramAPIURL, telegram.WithRateLimit(cfg.SendRatePerSecond))
		proxy.SetLogger(slog.Default())
		return proxy, nil
	})

	// Register Transport: the proxy behind the history recorder
	do.Provide(injector, func(i do.Injector) (notificationService.Transport, error) {
		recorder := historyService.NewRecorder(do.MustInvoke[*telegram.Proxy](i), do.MustInvoke[historyRepo.Repository](i))
		recorder.SetLogger(slog.Default())
		return recorder, nil
	})

	// Register Dispatcher
	do.Provide(injector, func(i do.Injector) (*notificationService.Dispatcher, error) {
		dispatcher := notificationService.NewDispatcher(
			do.MustInvoke[*profileService.Service](i),
			do.MustInvoke[notificationService.Transport](i),
		)
		dispatcher.SetLogger(slog.Default())
		return dispatcher, nil
	})

	// Register History Pruner
	do.Provide(injector, func(i do.Injector) (*historyService.Pruner, error) {
		cfg := do.MustInvoke[*config.Config](i)
		pruner := historyService.NewPruner(do.MustInvoke[historyRepo.Repository](i), cfg.HistoryPruneSchedule, cfg.HistoryRetention())
		pruner.SetLogger(slog.Default())
		return pruner, nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		return feedService.New(do.MustInvoke[historyRepo.Repository](i)), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		server := httpServer.New(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*notificationService.Dispatcher](i),
			do.MustInvoke[*profileService.Service](i),
			do.MustInvoke[*feedService.Service](i),
		)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(ctx context.Context, injector do.Injector) error {
	var errs []error

	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			errs = append(errs, oops.With("context", "failed to stop http server").Wrap(err))
		}
	}

	if pruner, err := do.Invoke[*historyService.Pruner](injector); err == nil && pruner != nil {
		pruner.Stop()
	}

	return oops.Join(errs...)
}
