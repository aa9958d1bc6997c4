package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/quote-engine/internal/config"
	"github.com/iwvelando/quote-engine/internal/lead"
	"github.com/iwvelando/quote-engine/internal/metrics"
	"github.com/iwvelando/quote-engine/internal/server"
	"github.com/iwvelando/quote-engine/pkg/constants"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	envFile := flag.String("env-file", ".env", "optional dotenv file loaded before reading the environment")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// A missing .env is normal outside local development.
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load env file %s\", \"error\": \"%v\"}\n", *envFile, err)
		os.Exit(1)
	}

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"invalid environment override\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited with error",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

func run(cfg *server.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := lead.NewStore(ctx, cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("failed to open lead store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close lead store",
				zap.String("op", "main.run"),
				zap.Error(err),
			)
		}
	}()

	var limiter *server.RateLimiter
	if cfg.RateLimit.Requests > 0 {
		limiter = server.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateWindow())
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr: cfg.Address,
		Handler: server.NewHandler(server.Options{
			Logger:      logger,
			Store:       store,
			Metrics:     metrics.New(),
			RateLimiter: limiter,
			MaxBodySize: cfg.BodySizeBytes(),
			Version:     version,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("quote server listening",
			zap.String("op", "main.run"),
			zap.String("address", cfg.Address),
			zap.String("store", cfg.Store.Driver),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received", zap.String("op", "main.run"))
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("quote server stopped", zap.String("op", "main.run"))
	return nil
}
