// Package db opens the character store and applies its migrations
package db

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-charbuilder/internal/db/migrations"
	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
)

// Dialect names a supported store
type Dialect string

// Dialects
const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// MemoryDSN opens a private in-memory SQLite database
const MemoryDSN = ":memory:"

// NewPostgresPool connects to Postgres and checks the connection
func NewPostgresPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to postgres")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping postgres")
	}
	return pool, nil
}

// OpenSQLite opens a SQLite file, or a private in-memory database for
// MemoryDSN
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := path
	if path != MemoryDSN {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if path == MemoryDSN {
		// each connection would get its own empty database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}
	return sqlDB, nil
}

var gooseMu sync.Mutex

// Migrate applies the embedded migrations for the dialect
func Migrate(ctx context.Context, sqlDB *sql.DB, dialect Dialect) error {
	var gooseDialect string
	switch dialect {
	case DialectPostgres:
		gooseDialect = "postgres"
	case DialectSQLite:
		gooseDialect = "sqlite3"
	default:
		return errors.InvalidArgumentf("unsupported dialect %q", dialect)
	}

	sub, err := fs.Sub(migrations.FS, string(dialect))
	if err != nil {
		return errors.Wrap(err, "failed to open migrations")
	}

	// goose keeps its base FS and dialect in package state
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(sub)
	if err := goose.SetDialect(gooseDialect); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}
	return nil
}

// MigratePostgres applies migrations through a database/sql handle on the
// pool's connection config
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() { _ = sqlDB.Close() }()
	return Migrate(ctx, sqlDB, DialectPostgres)
}
