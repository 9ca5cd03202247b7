// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/mattn/go-isatty"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/your-pick/cliparse"
	"github.com/danielhkuo/your-pick/db"
	"github.com/danielhkuo/your-pick/router"
	"github.com/danielhkuo/your-pick/sessions"
)

const (
	sessionIdle   = 30 * 24 * time.Hour
	pruneInterval = time.Hour
)

func main() {
	var err error

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg.LogLevel)

	if cfg.CSRFKeyGenerated {
		slog.Warn("CSRF_KEY not set, using a random key; forms break across restarts")
	}

	// Connect to the session database
	driver := "postgres"
	if cfg.DatabaseType == "sqlite" {
		driver = "sqlite"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()
	if driver == "sqlite" {
		// sqlite allows a single writer
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Create router
	handler, err := router.NewRouter(dbConn, cfg)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:           handler,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go pruneSessions(ctx, sessions.NewStore(dbConn))

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "api", cfg.APIBaseURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// setupLogging uses text output on a terminal and JSON otherwise
func setupLogging(level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		h = slog.NewTextHandler(os.Stderr, opts)
	} else {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

// pruneSessions deletes idle viewer sessions until ctx is done
func pruneSessions(ctx context.Context, store *sessions.Store) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.Prune(ctx, time.Now().Add(-sessionIdle))
			if err != nil {
				slog.Error("failed to prune sessions", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("pruned idle sessions", "count", n)
			}
		}
	}
}
