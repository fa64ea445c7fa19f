package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"thirdcoast.systems/videomarkup/cmd/web/auth"
	"thirdcoast.systems/videomarkup/cmd/web/handlers/admin"
	authhandlers "thirdcoast.systems/videomarkup/cmd/web/handlers/auth"
	"thirdcoast.systems/videomarkup/cmd/web/internal/web"
	"thirdcoast.systems/videomarkup/internal/application"
	"thirdcoast.systems/videomarkup/internal/config"
	"thirdcoast.systems/videomarkup/internal/db"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
	"thirdcoast.systems/videomarkup/pkg/utils/passwords"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting web service")

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	adminPassword, err := passwords.ParsePassword(conf.AdminPasswordHash)
	if err != nil {
		slog.Error("invalid ADMIN_PASSWORD_HASH", "error", err)
		os.Exit(1)
	}

	pool, err := application.OpenDBPoolWithRetry(ctx, *conf)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	dbc, err := db.NewDatabaseConnection(ctx, pool)
	if err != nil {
		slog.Error("failed to create database connection", "error", err)
		os.Exit(1)
	}
	defer dbc.Close()

	configCache, err := db.NewModuleConfigCache(ctx, dbc.Queries(ctx), conf.ModuleOwner)
	if err != nil {
		slog.Error("failed to load module config", "module", conf.ModuleOwner, "error", err)
		os.Exit(1)
	}
	go configCache.Listen(ctx, pool)

	var ace *markupconfig.AceOptions
	if conf.Ace.Enabled {
		ace = &markupconfig.AceOptions{
			Theme:      conf.Ace.Theme,
			Keybinding: conf.Ace.Keybinding,
			Height:     conf.Ace.Height,
			Behaviors:  conf.Ace.Behaviors,
		}
	}

	e, err := web.NewWebserver(ctx, web.Options{
		Sessions: auth.NewSessionManager(conf.SessionSecret),
		Admin:    authhandlers.Admin{Username: conf.AdminUsername, Password: adminPassword},
		Module: &admin.Module{
			Owner:  conf.ModuleOwner,
			Config: configCache,
			Cache:  dbc.CacheStore(ctx),
			Ace:    ace,
		},
		DefaultLocale: conf.DefaultLocale,
	})
	if err != nil {
		slog.Error("failed to create webserver", "error", err)
		os.Exit(1)
	}

	addr := ":" + strconv.Itoa(conf.WebServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		if errors.Is(err, http.ErrServerClosed) || ctx.Err() != nil {
			return
		}
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
