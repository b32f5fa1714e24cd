package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bidding/internal/gateway/rest/bidding"
	"bidding/internal/pkg/config"
	"bidding/internal/pkg/dotenv"
	"bidding/internal/poller"
	"bidding/pkg/logger"
	"bidding/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting bidding-watch application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file",
				logger.NewField("error", err),
			)
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config",
			logger.NewField("error", err),
		)
		return
	}

	err = run(context.Background(), appLogger, cfg)
	if err != nil {
		mainLog.Error("application failed",
			logger.NewField("error", err),
		)
		return
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	if cfg.Poller.RouteID == "" {
		return errors.New("POLLER_ROUTE_ID is required")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	httpClient := &http.Client{
		Timeout: cfg.Poller.RequestTimeout,
	}

	gateway := bidding.New(cfg.Poller.BaseURL, httpClient)
	presenter := poller.NewLogPresenter(log)

	watcher := poller.New(
		gateway,
		presenter,
		log,
		cfg.Poller.RouteID,
		cfg.Poller.RefreshInterval,
		cfg.Poller.CountdownInterval,
	)
	defer watcher.Close()

	runLog.With(
		logger.NewField("base_url", cfg.Poller.BaseURL),
		logger.NewField("route_id", cfg.Poller.RouteID),
		logger.NewField("refresh_interval", cfg.Poller.RefreshInterval.String()),
	).Info("Poller starting")

	if err := watcher.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			runLog.Info("Poller stopped gracefully")
			return nil
		}
		return fmt.Errorf("poller: %w", err)
	}

	runLog.Info("Poller stopped")
	return nil
}
