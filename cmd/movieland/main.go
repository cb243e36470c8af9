package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movieland/httpserver"
	"movieland/movie"
	"movieland/pkg/config"
	"movieland/pkg/logger"
	"movieland/pkg/sentry"
	"movieland/store"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot build logger:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Errorw("server stopped with error", "error", err)
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	if err := sentry.Init(cfg); err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := store.NewConnection(store.ConfigOptions(cfg, log))
	if err != nil {
		return fmt.Errorf("open %s connection: %w", cfg.DB.Driver, err)
	}
	defer func() { _ = store.Close(db) }()

	total, err := store.NewMigrator(db).Migrate()
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	log.Infow("applied migrations", "total", total)

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movie.NewUsecase(store.NewMovieRepository(db))),
	)
	if err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()
	log.Infow("server started!", "addr", server.Addr)

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		sentry.Error(err)
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sentry.WithTags(map[string]string{"phase": "shutdown"}).Warningf("graceful shutdown failed: %v", err)
		return err
	}
	return nil
}
