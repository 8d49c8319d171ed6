// Package worker runs the background cycles that keep the persisted
// sprint settings fresh and produce periodic capacity exports.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/teampulse/teampulse/internal/service"
)

// Worker periodically refreshes stale sprint settings and writes
// capacity report snapshots.
type Worker struct {
	capacity         *service.CapacityService
	refreshInterval  time.Duration
	exportInterval   time.Duration
	operationTimeout time.Duration
	now              func() time.Time
	done             chan struct{}
	wg               sync.WaitGroup
}

// Option is a functional option for configuring Worker.
type Option func(*Worker)

// WithRefreshInterval sets how often the settings refresh cycle runs.
func WithRefreshInterval(d time.Duration) Option {
	return func(w *Worker) {
		w.refreshInterval = d
	}
}

// WithExportInterval sets how often the export cycle runs.
func WithExportInterval(d time.Duration) Option {
	return func(w *Worker) {
		w.exportInterval = d
	}
}

// WithOperationTimeout bounds each cycle's execution time.
func WithOperationTimeout(d time.Duration) Option {
	return func(w *Worker) {
		w.operationTimeout = d
	}
}

// New creates a new Worker with the given capacity service and options.
func New(capacity *service.CapacityService, opts ...Option) *Worker {
	w := &Worker{
		capacity:         capacity,
		refreshInterval:  1 * time.Hour,
		exportInterval:   24 * time.Hour,
		operationTimeout: 30 * time.Second,
		now:              func() time.Time { return time.Now().UTC() },
		done:             make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Start runs the worker ticker loops until the context is cancelled or
// Stop is called.
func (w *Worker) Start(ctx context.Context) error {
	slog.InfoContext(ctx, "Worker started",
		"refresh_interval", w.refreshInterval,
		"export_interval", w.exportInterval)

	// Refresh immediately on startup so a freshly deployed worker
	// repairs a stale settings row without waiting a full interval.
	if err := w.RunRefreshOnce(ctx); err != nil {
		slog.ErrorContext(ctx, "Settings refresh on startup failed", "error", err)
	}

	refreshTicker := time.NewTicker(w.refreshInterval)
	exportTicker := time.NewTicker(w.exportInterval)
	defer refreshTicker.Stop()
	defer exportTicker.Stop()

	for {
		select {
		case <-refreshTicker.C:
			w.wg.Add(1)
			go func() {
				defer w.wg.Done()
				if err := w.RunRefreshOnce(ctx); err != nil {
					slog.ErrorContext(ctx, "Settings refresh failed", "error", err)
				}
			}()
		case <-exportTicker.C:
			w.wg.Add(1)
			go func() {
				defer w.wg.Done()
				if err := w.RunExportOnce(ctx); err != nil {
					slog.ErrorContext(ctx, "Capacity export failed", "error", err)
				}
			}()
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker context cancelled, shutting down")
			w.wg.Wait()
			return ctx.Err()
		case <-w.done:
			slog.InfoContext(ctx, "Worker stopped")
			w.wg.Wait()
			return nil
		}
	}
}

// Stop gracefully stops the worker.
func (w *Worker) Stop() error {
	close(w.done)
	return nil
}

// RunRefreshOnce executes a single settings refresh cycle.
func (w *Worker) RunRefreshOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, w.operationTimeout)
	defer cancel()

	record, refreshed, err := w.capacity.RefreshSettingsIfStale(ctx, w.now())
	if err != nil {
		return fmt.Errorf("failed to refresh sprint settings: %w", err)
	}
	if refreshed {
		slog.InfoContext(ctx, "Sprint settings refreshed",
			"sprint_number", record.SprintNumber,
			"start_date", record.StartDate,
			"end_date", record.EndDate)
	}
	return nil
}

// RunExportOnce executes a single export cycle, writing a capacity
// report for every team.
func (w *Worker) RunExportOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, w.operationTimeout)
	defer cancel()

	names, err := w.capacity.ExportAllTeams(ctx, w.now())
	if err != nil {
		return fmt.Errorf("failed to export capacity reports: %w", err)
	}
	slog.InfoContext(ctx, "Capacity reports exported", "count", len(names))
	return nil
}
