package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-charbuilder/internal/clients/external"
	"github.com/KirkDiggler/rpg-charbuilder/internal/config"
	"github.com/KirkDiggler/rpg-charbuilder/internal/db"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/handlers/charbuilder/v1alpha1"
	"github.com/KirkDiggler/rpg-charbuilder/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-charbuilder/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-charbuilder/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-charbuilder/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-charbuilder/internal/redis"
	"github.com/KirkDiggler/rpg-charbuilder/internal/reference"
	characterrepo "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/character_draft"
	dicesession "github.com/KirkDiggler/rpg-charbuilder/internal/repositories/dice_session"
)

// app holds the wired service and everything that must be closed with it
type app struct {
	handler *v1alpha1.Handler
	closers []func()
}

// Close releases resources in reverse order of acquisition
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildApp connects the stores, loads reference data and wires the handler
func buildApp(ctx context.Context, cfg config.Config) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() { _ = redisClient.Close() })
	if err := redis.Ping(ctx, redisClient); err != nil {
		return nil, err
	}

	characterRepo, closeStore, err := openCharacterRepo(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closeStore)

	catalog := loadCatalog(ctx, cfg.Reference)

	clk := clock.New()
	draftRepo, err := draftrepo.NewRedisRepository(&draftrepo.Config{
		Client: redisClient,
		Clock:  clk,
		TTL:    cfg.Drafts.TTL,
	})
	if err != nil {
		return nil, err
	}

	sessionRepo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: redisClient,
		Clock:  clk,
		TTL:    cfg.Dice.SessionTTL,
	})
	if err != nil {
		return nil, err
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: sessionRepo,
		IDGenerator:     idgen.NewUUID("roll"),
	})
	if err != nil {
		return nil, err
	}

	characterService, err := character.New(&character.Config{
		CharacterRepo:      characterRepo,
		CharacterDraftRepo: draftRepo,
		DiceService:        diceService,
		Catalog:            catalog,
		EventBus:           newEventBus(),
		DraftIDGenerator:   idgen.NewUUID("draft"),
		CharacterIDGen:     idgen.NewUUID("char"),
		Clock:              clk,
	})
	if err != nil {
		return nil, err
	}

	a.handler, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: characterService,
		DiceService:      diceService,
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

// openCharacterRepo opens the configured character store, migrating it
// first when asked to
func openCharacterRepo(ctx context.Context, cfg config.StorageConfig) (characterrepo.Repository, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if cfg.MigrateOnStart {
			if err := db.MigratePostgres(ctx, pool); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		repo, err := characterrepo.NewPostgresRepository(&characterrepo.PostgresConfig{Pool: pool})
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		slog.Info("character store ready", "driver", cfg.Driver)
		return repo, pool.Close, nil

	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() { _ = sqlDB.Close() }
		if cfg.MigrateOnStart {
			if err := db.Migrate(ctx, sqlDB, db.DialectSQLite); err != nil {
				closeDB()
				return nil, nil, err
			}
		}
		repo, err := characterrepo.NewSQLiteRepository(&characterrepo.SQLiteConfig{DB: sqlDB})
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		slog.Info("character store ready", "driver", cfg.Driver, "path", cfg.SQLitePath)
		return repo, closeDB, nil

	default:
		return nil, nil, errors.InvalidArgumentf("unsupported storage driver %q", cfg.Driver)
	}
}

// loadCatalog merges dnd5e-api data onto the built-in tables. Any failure
// leaves the service on the built-in tables.
func loadCatalog(ctx context.Context, cfg config.ReferenceConfig) *reference.Catalog {
	if cfg.Offline {
		slog.Info("reference data offline, using built-in tables")
		return reference.Static()
	}

	client, err := external.New(&external.Config{
		BaseURL:     cfg.BaseURL,
		HTTPTimeout: cfg.HTTPTimeout,
		CacheTTL:    cfg.CacheTTL,
	})
	if err != nil {
		slog.Warn("dnd5e-api client unavailable, using built-in tables", "error", err)
		return reference.Static()
	}

	loader, err := reference.NewLoader(&reference.LoaderConfig{Client: client})
	if err != nil {
		slog.Warn("reference loader unavailable, using built-in tables", "error", err)
		return reference.Static()
	}

	catalog, err := loader.Load(ctx)
	if err != nil {
		slog.Warn("failed to load reference data, using built-in tables",
			"base_url", cfg.BaseURL,
			"error", err,
		)
		return reference.Static()
	}

	slog.Info("reference data loaded",
		"races", len(catalog.Races()),
		"classes", len(catalog.Classes()),
	)
	return catalog
}

// newEventBus returns a bus that logs the character lifecycle
func newEventBus() events.EventBus {
	bus := events.NewBus()
	for _, eventType := range []string{
		character.EventDraftCreated,
		character.EventCharacterFinalized,
		character.EventCharacterDeleted,
	} {
		bus.SubscribeFunc(eventType, 0, logEvent)
	}
	return bus
}

func logEvent(ctx context.Context, e events.Event) error {
	attrs := []any{"event_type", e.Type()}
	if src := e.Source(); src != nil {
		attrs = append(attrs, "source_id", src.GetID())
	}
	if target := e.Target(); target != nil {
		attrs = append(attrs, "target_type", target.GetType(), "target_id", target.GetID())
	}
	slog.InfoContext(ctx, "domain event", attrs...)
	return nil
}
