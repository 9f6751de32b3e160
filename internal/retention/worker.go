// Package retention purges soft-deleted uploads once their retention
// window has lapsed.
package retention

import (
	"context"
	"log/slog"
	"time"

	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/repository"
)

// CleanupStats summarizes one sweep.
type CleanupStats struct {
	Eligible int
	Deleted  int
	Failed   int
}

// Cleaner removes staged files alongside the store row; satisfied by
// *pipeline.Service.
type Cleaner interface {
	CleanupStaging(uploadID string)
}

// Worker is the background retention loop.
type Worker struct {
	repo    repository.UploadRepository
	cleaner Cleaner
	cfg     common.RetentionConfig
	logger  *slog.Logger
}

func NewWorker(repo repository.UploadRepository, cleaner Cleaner, cfg common.RetentionConfig, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RetentionDays < 0 {
		cfg.RetentionDays = 0
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Hour
	}
	return &Worker{repo: repo, cleaner: cleaner, cfg: cfg, logger: logger}
}

// Run sweeps on the configured interval until ctx is done. Iteration
// failures are logged; the loop continues.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("retention.worker_started",
		"retention_days", w.cfg.RetentionDays,
		"interval", w.cfg.CleanupInterval.String(),
	)
	ticker := time.NewTicker(w.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		stats, err := w.Sweep(ctx)
		if err != nil {
			w.logger.Error("retention.sweep_failed", "error", err)
		} else if stats.Eligible > 0 {
			w.logger.Info("retention.sweep_done",
				"eligible", stats.Eligible,
				"deleted", stats.Deleted,
				"failed", stats.Failed,
			)
		}

		select {
		case <-ctx.Done():
			w.logger.Info("retention.worker_stopped")
			return
		case <-ticker.C:
		}
	}
}

// Sweep permanently deletes every soft-deleted upload whose deleted_at is
// at least retention_days old. Idempotent per tick.
func (w *Worker) Sweep(ctx context.Context) (CleanupStats, error) {
	var stats CleanupStats
	cutoff := time.Now().AddDate(0, 0, -w.cfg.RetentionDays)

	ids, err := w.repo.ListExpiredDeleted(ctx, cutoff)
	if err != nil {
		return stats, err
	}
	stats.Eligible = len(ids)

	for _, id := range ids {
		if err := w.repo.PermanentDelete(ctx, id); err != nil {
			stats.Failed++
			w.logger.Error("retention.delete_failed", "upload_id", id, "error", err)
			continue
		}
		if w.cleaner != nil {
			w.cleaner.CleanupStaging(id)
		}
		stats.Deleted++
		w.logger.Info("retention.deleted", "upload_id", id)
	}
	return stats, nil
}
