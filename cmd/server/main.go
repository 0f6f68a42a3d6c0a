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

	"github.com/iudanet/bookgrid/internal/config"
	"github.com/iudanet/bookgrid/internal/server"
	"github.com/iudanet/bookgrid/internal/server/snapshot"
	"github.com/iudanet/bookgrid/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "bookgrid-server.yaml", "Path to config file")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadServer(configPath)
	if err != nil {
		if cfg == nil {
			return fmt.Errorf("load config: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLevel(cfg.LogLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	limits := cfg.Semester.Limits()
	seeded, err := store.Seed(ctx, limits)
	if err != nil {
		return fmt.Errorf("seed schedule: %w", err)
	}
	logger.Info("schedule seeded", "inserted", seeded, "tables", limits.Resources, "weeks", limits.Weeks)

	if cfg.SnapshotEnabled() {
		writer := snapshot.NewWriter(store, cfg.StaticDir, logger)
		scheduler, err := snapshot.NewScheduler(ctx, cfg.SnapshotCron, writer, logger)
		if err != nil {
			return err
		}
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: server.NewRouter(server.Config{
			Storage:      store,
			Pinger:       store,
			Logger:       logger,
			StaticDir:    cfg.StaticDir,
			Version:      Version,
			CORSOrigins:  cfg.CORSOrigins,
			Limits:       limits,
			UpdateRate:   cfg.UpdateRate,
			UpdateWindow: cfg.UpdateWindow,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func printVersion() {
	fmt.Printf("Bookgrid Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
