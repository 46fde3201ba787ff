package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"media_syncer/internal/config"
	"media_syncer/internal/publisher"
	"media_syncer/internal/scheduler"
	"media_syncer/internal/service"
	"media_syncer/internal/source/tmdb"
	"media_syncer/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	entryStore := postgres.NewEntryStore(db)
	personStore := postgres.NewPersonStore(db)
	bridgeStore := postgres.NewBridgeStore(db)
	catalogStore := postgres.NewCatalogStore(db)
	txManager := postgres.NewTransactionManager(db)

	fetcher := tmdb.New(tmdb.Config{
		BaseURL:        cfg.TMDB.BaseURL,
		APIKey:         cfg.TMDB.APIKey,
		Language:       cfg.TMDB.Language,
		Timeout:        cfg.TMDB.Timeout,
		RequestDelay:   cfg.TMDB.RequestDelay,
		MaxAttempts:    cfg.TMDB.Retry.MaxAttempts,
		InitialBackoff: cfg.TMDB.Retry.InitialBackoff,
		MaxBackoff:     cfg.TMDB.Retry.MaxBackoff,
	}, logger)

	syncService := service.NewSyncService(
		fetcher,
		entryStore,
		personStore,
		bridgeStore,
		catalogStore,
		txManager,
		rabbitMQ,
		service.SystemClock(),
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting metadata syncer",
		"interval", cfg.Sync.Interval,
		"freshness_window", cfg.Sync.FreshnessWindow,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
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

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
