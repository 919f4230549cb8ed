// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rubyet/webfolio/internal/ai"
	"github.com/rubyet/webfolio/internal/auth"
	"github.com/rubyet/webfolio/internal/config"
	"github.com/rubyet/webfolio/internal/handler"
	"github.com/rubyet/webfolio/internal/middleware"
	"github.com/rubyet/webfolio/internal/store"
	"github.com/rubyet/webfolio/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "webfolio - portfolio and blog backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WEBFOLIO_JWT_SECRET     Token signing key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WEBFOLIO_DATA_DIR       JSON data directory (default: ./data)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WEBFOLIO_SERVER_PORT    Server port (default: 5000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WEBFOLIO_ENV            Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WEBFOLIO_AI_API_KEY     OpenAI-compatible API key (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  WEBFOLIO_DO_SEED        Seed sample posts on first boot (default: false)\n")
	}
	flag.Parse()

	if *showVersion {
		info := version.Get()
		fmt.Printf("webfolio %s (%s)\n", info.Version, info.GitCommit)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := store.EnsureDataDir(cfg.DataDir); err != nil {
		return fmt.Errorf("preparing data directory: %w", err)
	}

	posts := store.NewPostStore(cfg.DataDir, cfg.CacheLifetime(), logger)
	contacts := store.NewContactStore(cfg.DataDir, logger)
	admins := store.NewAdminStore(cfg.DataDir, logger)

	if err := admins.Bootstrap(); err != nil {
		return fmt.Errorf("bootstrapping admin account: %w", err)
	}
	if cfg.DoSeed {
		if err := store.SeedPosts(posts, logger); err != nil {
			return fmt.Errorf("seeding posts: %w", err)
		}
	}

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenLifetime())

	aiService := ai.NewService(ai.Options{
		APIKey:  cfg.AIAPIKey,
		BaseURL: cfg.AIBaseURL,
		Model:   cfg.AIModel,
		Timeout: cfg.AICallTimeout(),
	}, logger)

	login := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		MaxAttempts: cfg.LoginMaxAttempts,
		Window:      cfg.LoginWindow(),
	}, logger)
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			login.Cleanup()
		}
	}()

	h := handler.New(handler.Options{
		Posts:    posts,
		Contacts: contacts,
		Admins:   admins,
		Issuer:   issuer,
		AI:       aiService,
		Login:    login,
		Env:      cfg.Env,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           h.Routes(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "ai", aiService.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
