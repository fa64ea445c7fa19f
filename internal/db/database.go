package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type DatabaseConnection struct {
	*pgxpool.Pool
}

// NewDatabaseConnection wraps a pool that application.OpenDBPoolWithRetry has
// already connected.
func NewDatabaseConnection(ctx context.Context, pool *pgxpool.Pool) (*DatabaseConnection, error) {
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DatabaseConnection{pool}, nil
}

// Close closes the database connection
func (db *DatabaseConnection) Close() {
	db.Pool.Close()
}

func (db *DatabaseConnection) Queries(ctx context.Context) *Queries {
	return New(db)
}

// CacheStore returns the cache store backed by this connection.
func (db *DatabaseConnection) CacheStore(ctx context.Context) *CacheStore {
	return NewCacheStore(db.Queries(ctx))
}

// InTx runs fn in a transaction. The transaction commits when fn returns nil.
func (db *DatabaseConnection) InTx(ctx context.Context, fn func(q *Queries) error) error {
	return pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
		return fn(New(tx))
	})
}

//go:embed sql/migrations/*.sql
var embedMigrations embed.FS

// MigrationTarget reads GOOSE_UP_TO or GOOSE_DOWN_TO. Without either the
// target is the latest embedded version.
func MigrationTarget() (version int64, down bool, err error) {
	if v, ok := os.LookupEnv("GOOSE_DOWN_TO"); ok {
		version, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("parse GOOSE_DOWN_TO: %w", err)
		}
		return version, true, nil
	}
	if v, ok := os.LookupEnv("GOOSE_UP_TO"); ok {
		version, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("parse GOOSE_UP_TO: %w", err)
		}
		return version, false, nil
	}
	return goose.MaxVersion, false, nil
}

func migrationsFS() (fs.FS, error) {
	return fs.Sub(embedMigrations, "sql/migrations")
}

// Migrate moves the schema to the target chosen by MigrationTarget.
func (db *DatabaseConnection) Migrate(ctx context.Context) error {
	target, down, err := MigrationTarget()
	if err != nil {
		return err
	}

	fsys, err := migrationsFS()
	if err != nil {
		return err
	}

	stdDb := stdlib.OpenDBFromPool(db.Pool)
	defer stdDb.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, stdDb, fsys)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	for _, src := range provider.ListSources() {
		slog.Info("migration embedded", "source", src.Path, "version", src.Version, "applied", src.Version <= current)
	}

	var results []*goose.MigrationResult
	if down {
		results, err = provider.DownTo(ctx, target)
	} else {
		results, err = provider.UpTo(ctx, target)
	}
	for _, r := range results {
		slog.Info("migration applied", "version", r.Source.Version, "direction", r.Direction, "duration", r.Duration)
	}
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
