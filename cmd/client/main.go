package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/bookgrid/internal/client/admin"
	"github.com/iudanet/bookgrid/internal/client/api"
	"github.com/iudanet/bookgrid/internal/client/cli"
	"github.com/iudanet/bookgrid/internal/client/iocli"
	"github.com/iudanet/bookgrid/internal/client/schedule"
	"github.com/iudanet/bookgrid/internal/client/source"
	"github.com/iudanet/bookgrid/internal/client/storage/boltdb"
	"github.com/iudanet/bookgrid/internal/config"
	"github.com/iudanet/bookgrid/internal/validation"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "bookgrid.yaml", "Path to config file")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")
	noColor := flag.Bool("no-color", false, "Disable colored output")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	cfg, err := config.LoadClient(*configPath)
	if err != nil {
		if cfg == nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		// Не удалось создать файл по умолчанию: работаем с настройками в памяти
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if *serverURL != "" {
		cfg.Server = *serverURL
	}
	if *dbPath != "" {
		cfg.DB = *dbPath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLevel(cfg.LogLevel),
	}))

	semester, err := cfg.Semester.Semester()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid semester config: %v\n", err)
		os.Exit(1)
	}
	limits := cfg.Semester.Limits()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DB,
		boltdb.WithNamespace(cfg.Namespace),
		boltdb.WithLimits(limits),
		boltdb.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(cfg.Server)

	sources, err := buildSources(cfg, apiClient, limits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid sources config: %v\n", err)
		os.Exit(1)
	}

	scheduleCfg := schedule.Config{
		Fetcher:  source.NewChain(logger, sources...),
		Overlay:  boltStorage,
		Metadata: boltStorage,
		Semester: semester,
		Limits:   limits,
		Logger:   logger,
	}
	if !cfg.ReadOnly {
		scheduleCfg.Writer = apiClient
	}

	app := cli.New(
		stdio,
		schedule.NewService(scheduleCfg),
		admin.NewService(boltStorage, limits, logger),
		cli.Options{RefreshCron: cfg.RefreshCron, Namespace: cfg.Namespace, NoColor: *noColor},
	)

	// Выполняем команду
	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage(stdio)
		}
		os.Exit(1)
	}
}

// buildSources собирает стратегии загрузки в порядке из конфигурации
func buildSources(cfg *config.ClientConfig, apiClient *api.Client, limits validation.Limits) ([]source.Source, error) {
	sources := make([]source.Source, 0, len(cfg.Sources))
	for _, name := range cfg.Sources {
		switch name {
		case source.NameAPI:
			sources = append(sources, source.NewAPISource(apiClient, limits))
		case source.NameStatic:
			staticClient := apiClient
			if cfg.StaticURL != "" {
				staticClient = api.NewClient(cfg.StaticURL)
			}
			sources = append(sources, source.NewStaticSource(staticClient, "", limits))
		case source.NameFile:
			if cfg.ScheduleFile == "" {
				return nil, errors.New("source \"file\" requires schedule_file")
			}
			sources = append(sources, source.NewFileSource(cfg.ScheduleFile, limits))
		case source.NameEmbedded:
			sources = append(sources, source.NewEmbeddedSource(limits))
		default:
			return nil, fmt.Errorf("unknown source %q", name)
		}
	}
	return sources, nil
}

func printVersion() {
	fmt.Printf("Bookgrid Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
