package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-catalog/internal/config"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/generation"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/pattern"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/resolver"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/validation"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/diagnostics"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/selection"
	redisclient "github.com/KirkDiggler/rpg-catalog/internal/redis"
	catalogrepo "github.com/KirkDiggler/rpg-catalog/internal/repositories/catalog"
	catalogsvc "github.com/KirkDiggler/rpg-catalog/internal/services/catalog"
)

// app holds the wired components shared by the server and CLI commands
type app struct {
	repo      catalogrepo.Repository
	store     catalogsvc.Store
	tally     *diagnostics.Tally
	selector  *selection.Selector
	resolver  *resolver.Orchestrator
	executor  *pattern.Orchestrator
	generator *generation.Orchestrator
	validator *validation.Orchestrator

	redis redisclient.Client
}

// newApp wires every component for cfg
func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{}

	repo, err := a.openRepository(cfg)
	if err != nil {
		return nil, err
	}
	a.repo = repo

	a.store, err = catalogsvc.New(&catalogsvc.Config{
		Repository: repo,
		Clock:      clock.New(),
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog store: %w", err)
	}

	bus := events.NewBus()
	a.tally = diagnostics.NewTally(bus)
	busReporter, err := diagnostics.NewBusReporter(&diagnostics.BusReporterConfig{
		Bus:      bus,
		SourceID: "rpg-catalog",
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bus reporter: %w", err)
	}
	reporter := diagnostics.Multi(diagnostics.NewSlogReporter(logger), busReporter)

	roller := newRoller(cfg.RNGSeed)
	a.selector, err = selection.New(&selection.Config{Roller: roller})
	if err != nil {
		return nil, fmt.Errorf("failed to create selector: %w", err)
	}

	a.resolver, err = resolver.New(&resolver.Config{
		Store:    a.store,
		Reporter: reporter,
		Roller:   roller,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver: %w", err)
	}

	a.executor, err = pattern.New(&pattern.Config{
		Selector: a.selector,
		Resolver: a.resolver,
		Reporter: reporter,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pattern executor: %w", err)
	}

	var ids idgen.Generator = idgen.NewUUID("name")
	if cfg.RNGSeed != 0 {
		ids = idgen.NewSequential("name")
	}
	a.generator, err = generation.New(&generation.Config{
		Store:       a.store,
		Executor:    a.executor,
		Selector:    a.selector,
		IDGenerator: ids,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create name generator: %w", err)
	}

	a.validator, err = validation.New(&validation.Config{
		Store:    a.store,
		Resolver: a.resolver,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}

	return a, nil
}

func (a *app) openRepository(cfg *config.Config) (catalogrepo.Repository, error) {
	if cfg.CatalogSource != config.SourceRedis {
		return catalogrepo.NewFilesystem(&catalogrepo.FilesystemConfig{Root: cfg.CatalogRoot})
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	a.redis = client

	return catalogrepo.NewRedis(&catalogrepo.RedisConfig{
		Client:    client,
		KeyPrefix: cfg.RedisKeyPrefix,
	})
}

// newRoller returns a seeded roller for reproducible runs, or the toolkit's
// crypto roller
func newRoller(seed uint64) dice.Roller {
	if seed != 0 {
		return selection.NewSeededRoller(seed)
	}
	return dice.DefaultRoller
}

// preload warms the store when the config asks for it
func (a *app) preload(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if !cfg.Preload {
		return nil
	}
	out, err := a.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to preload catalogs: %w", err)
	}
	logger.InfoContext(ctx, "catalogs preloaded", "loaded", out.Loaded, "failed", out.Failed)
	return nil
}

// close releases the app's connections and logs what it saw
func (a *app) close(logger *slog.Logger) {
	stats := a.store.Stats()
	logger.Info("catalog store stats",
		"hits", stats.Hits,
		"misses", stats.Misses,
		"load_failures", stats.LoadFailures,
		"cached_files", stats.CachedFiles,
		"domains", stats.Domains,
		"unresolved_references", a.tally.Total(),
	)

	if err := a.tally.Close(); err != nil {
		logger.Warn("failed to unsubscribe diagnostics tally", "error", err)
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Warn("failed to close redis client", "error", err)
		}
	}
}
