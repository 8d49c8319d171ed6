package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teampulse/teampulse/internal/config"
	"github.com/teampulse/teampulse/internal/export"
	"github.com/teampulse/teampulse/internal/service"
	"github.com/teampulse/teampulse/internal/storage/fs"
	"github.com/teampulse/teampulse/internal/storage/gcs"
	"github.com/teampulse/teampulse/internal/storage/postgres"
	"github.com/teampulse/teampulse/internal/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadWorkerConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store, err := postgres.NewStore(ctx, postgres.DBConfig{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second,
		AutoMigrate:     cfg.Database.AutoMigrate,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	sink, err := newSink(ctx, cfg.Export)
	if err != nil {
		return fmt.Errorf("failed to create export sink: %w", err)
	}

	detection, err := cfg.Sprint.DetectionConfig()
	if err != nil {
		return fmt.Errorf("invalid sprint configuration: %w", err)
	}

	svc, err := service.NewCapacityService(store, sink, detection)
	if err != nil {
		return fmt.Errorf("failed to create capacity service: %w", err)
	}

	w := worker.New(svc,
		worker.WithRefreshInterval(cfg.RefreshInterval),
		worker.WithExportInterval(cfg.ExportInterval),
		worker.WithOperationTimeout(cfg.OperationTimeout),
	)

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, stopping worker")
		if err := w.Stop(); err != nil {
			return fmt.Errorf("failed to stop worker: %w", err)
		}
		<-errChan
	case err := <-errChan:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("worker error: %w", err)
		}
	}

	slog.Info("Worker shut down gracefully")
	return nil
}

// newSink builds the configured export sink.
func newSink(ctx context.Context, cfg config.ExportConfig) (export.Sink, error) {
	switch cfg.SinkType {
	case "gcs":
		return gcs.NewSink(ctx, cfg.GCSBucket)
	default:
		return fs.NewSink(cfg.FSDir)
	}
}
