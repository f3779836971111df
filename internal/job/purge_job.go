package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
)

// PurgeJob permanently removes rows that were soft-deleted longer ago than
// the retention window. Clients already treat destroyed rows as gone; this
// job makes the deletion physical.
type PurgeJob struct {
	boardRepo  repository.BoardRepository
	columnRepo repository.ColumnRepository
	cardRepo   repository.CardRepository
	retention  time.Duration
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewPurgeJob creates a new purge job with the given retention window
func NewPurgeJob(
	boardRepo repository.BoardRepository,
	columnRepo repository.ColumnRepository,
	cardRepo repository.CardRepository,
	retention time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) *PurgeJob {
	return &PurgeJob{
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
		retention:  retention,
		metrics:    m,
		logger:     logger,
	}
}

// Run executes one purge pass over all three tables. Failures on one table
// do not stop the others; the cron scheduler calls Run on its schedule.
func (j *PurgeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().Add(-j.retention)

	tables := []struct {
		name  string
		purge func(context.Context, time.Time) (int64, error)
	}{
		{"cards", j.cardRepo.PurgeDestroyedBefore},
		{"columns", j.columnRepo.PurgeDestroyedBefore},
		{"boards", j.boardRepo.PurgeDestroyedBefore},
	}

	for _, table := range tables {
		count, err := table.purge(ctx, cutoff)
		if err != nil {
			j.logger.Error("purge pass failed",
				zap.String("table", table.name),
				zap.Time("cutoff", cutoff),
				zap.Error(err),
			)
			continue
		}
		j.metrics.AddRowsPurged(table.name, count)
		if count > 0 {
			j.logger.Info("purged destroyed rows",
				zap.String("table", table.name),
				zap.Int64("count", count),
				zap.Time("cutoff", cutoff),
			)
		}
	}
}
