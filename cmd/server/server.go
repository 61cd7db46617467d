// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/oliverandrich/tripwell/internal/backend"
	"codeberg.org/oliverandrich/tripwell/internal/config"
	"codeberg.org/oliverandrich/tripwell/internal/database"
	"codeberg.org/oliverandrich/tripwell/internal/i18n"
	"codeberg.org/oliverandrich/tripwell/internal/repository"
	"codeberg.org/oliverandrich/tripwell/internal/services/email"
	"codeberg.org/oliverandrich/tripwell/internal/services/recovery"
	"codeberg.org/oliverandrich/tripwell/internal/services/session"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"
)

// setupLogger configures the global slog logger.
func setupLogger(level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{Level: logLevel})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func runServer(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)

	logger := setupLogger(cfg.Log.Level, cfg.Log.Format)

	// Open SQLite database; migrations run on open
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := i18n.Init(); err != nil {
		return fmt.Errorf("failed to initialize i18n: %w", err)
	}

	repo := repository.New(db)

	mailer, err := email.NewService(&cfg.SMTP)
	if err != nil {
		return fmt.Errorf("failed to create email service: %w", err)
	}

	recoveryService := recovery.NewService(repo, mailer)

	sessionManager, err := session.NewManager(&cfg.Session)
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}

	backendClient := backend.NewClient(&cfg.Backend)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	deps := &routerDeps{
		cfg:             cfg,
		repo:            repo,
		recoveryService: recoveryService,
		sessionManager:  sessionManager,
		backendClient:   backendClient,
		logger:          logger,
	}
	setupRoutes(e, deps)

	logger.Info("server_config",
		"database", cfg.Database.DSN,
		"backend", cfg.Backend.BaseURL,
		"log_level", cfg.Log.Level,
	)

	// Serve until the context is cancelled by SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_start", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("server_stop")
	return e.Shutdown(shutdownCtx)
}
