package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charbuilder/internal/config"
	"github.com/KirkDiggler/rpg-charbuilder/internal/db"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  `Apply the embedded migrations to the configured character store (postgres or sqlite).`,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(cfg.Server, os.Stderr))

	ctx := cmd.Context()

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := db.NewPostgresPool(ctx, cfg.Storage.PostgresDSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := db.MigratePostgres(ctx, pool); err != nil {
			return err
		}

	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return err
		}
		defer func() { _ = sqlDB.Close() }()
		if err := db.Migrate(ctx, sqlDB, db.DialectSQLite); err != nil {
			return err
		}

	default:
		return errors.InvalidArgumentf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	slog.Info("migrations applied", "driver", cfg.Storage.Driver)
	return nil
}
