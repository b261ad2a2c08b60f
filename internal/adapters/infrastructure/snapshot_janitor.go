package infrastructure

import (
	"context"
	"time"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"github.com/go-co-op/gocron"
)

const sweepTimeout = 30 * time.Second

// SnapshotJanitor periodically prunes expired entries from the snapshot store
type SnapshotJanitor struct {
	scheduler *gocron.Scheduler
	store     ports.SnapshotStore
	logger    ports.Logger
	interval  time.Duration
}

// SnapshotJanitorParams holds parameters for creating the janitor
type SnapshotJanitorParams struct {
	Store    ports.SnapshotStore
	Logger   ports.Logger
	Interval time.Duration
}

func NewSnapshotJanitor(params SnapshotJanitorParams) (*SnapshotJanitor, error) {
	if params.Store == nil {
		return nil, errors.NewConfigurationError("snapshot store is required", nil)
	}
	if params.Logger == nil {
		return nil, errors.NewConfigurationError("logger is required", nil)
	}
	if params.Interval < time.Minute {
		return nil, errors.NewConfigurationError("janitor interval must be at least one minute", nil)
	}

	return &SnapshotJanitor{
		scheduler: gocron.NewScheduler(time.UTC),
		store:     params.Store,
		logger:    params.Logger,
		interval:  params.Interval,
	}, nil
}

// Start schedules the sweep and starts the underlying scheduler.
// The first sweep runs one interval after start.
func (j *SnapshotJanitor) Start() error {
	minutes := int(j.interval.Minutes())

	_, err := j.scheduler.Every(minutes).Minutes().WaitForSchedule().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		_, _ = j.Sweep(ctx)
	})
	if err != nil {
		return errors.NewConfigurationError("failed to schedule snapshot janitor", err)
	}

	j.scheduler.StartAsync()
	j.logger.Info("Snapshot janitor started", ports.F("interval_minutes", minutes))
	return nil
}

// Sweep prunes the store once and returns the number of removed snapshots
func (j *SnapshotJanitor) Sweep(ctx context.Context) (int, error) {
	removed, err := j.store.Prune(ctx)
	if err != nil {
		j.logger.Warn("Snapshot prune failed", ports.F("error", err))
		return 0, err
	}
	if removed > 0 {
		j.logger.Info("Pruned expired snapshots", ports.F("removed", removed))
	}
	return removed, nil
}

// Stop stops the scheduler and cancels any future sweeps
func (j *SnapshotJanitor) Stop() {
	j.scheduler.Stop()
}
