package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"thirdcoast.systems/videomarkup/internal/application"
	"thirdcoast.systems/videomarkup/internal/config"
	"thirdcoast.systems/videomarkup/internal/db"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
)

func main() {
	slog.Info("Starting database migrator service")

	startupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conf, err := config.LoadConfig(startupCtx, config.DatabaseFields...)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to database with retry logic
	pool, err := application.OpenDBPoolWithRetry(startupCtx, *conf)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	databaseConnection, err := db.NewDatabaseConnection(startupCtx, pool)
	if err != nil {
		slog.Error("failed to create database connection", "error", err)
		os.Exit(1)
	}
	defer databaseConnection.Close()

	if err = databaseConnection.Migrate(startupCtx); err != nil {
		slog.Error("failed to run PostgreSQL migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	err = databaseConnection.InTx(startupCtx, func(q *db.Queries) error {
		return installDefaults(startupCtx, q, conf.ModuleOwner)
	})
	if err != nil {
		slog.Error("failed to install default module config", "module", conf.ModuleOwner, "error", err)
		os.Exit(1)
	}
}

type moduleConfigs interface {
	GetModuleConfig(ctx context.Context, module string) (*db.ModuleConfig, error)
	UpsertModuleConfig(ctx context.Context, arg db.UpsertModuleConfigParams) (*db.ModuleConfig, error)
}

// installDefaults writes the default settings for a module that has never
// been configured. Existing configs are left alone.
func installDefaults(ctx context.Context, q moduleConfigs, module string) error {
	_, err := q.GetModuleConfig(ctx, module)
	if err == nil {
		return nil
	}
	if !db.IsNotFound(err) {
		return err
	}

	_, err = q.UpsertModuleConfig(ctx, db.UpsertModuleConfigParams{
		Module: module,
		Data:   db.ModuleData(markupconfig.Defaults().Data()),
	})
	if err != nil {
		return err
	}
	slog.Info("Installed default module config", "module", module)
	return nil
}
