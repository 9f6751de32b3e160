package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/medassure/bill-verifier/internal/billextract"
	"github.com/medassure/bill-verifier/internal/catalog"
	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/entity"
	"github.com/medassure/bill-verifier/internal/extract"
	"github.com/medassure/bill-verifier/internal/render"
	"github.com/medassure/bill-verifier/internal/repository"
	"github.com/medassure/bill-verifier/internal/verifier"
)

// Worker drives claimed jobs through OCR, extraction, and verification.
// One worker goroutine runs per process; horizontal scale comes from the
// atomic claim, not in-process parallelism.
type Worker struct {
	service   *Service
	repo      repository.UploadRepository
	extractor extract.PageExtractor
	parser    *billextract.Parser
	verifier  *verifier.Verifier
	catalog   *catalog.Store
	cfg       common.PipelineConfig
	logger    *slog.Logger
}

func NewWorker(
	service *Service,
	repo repository.UploadRepository,
	extractor extract.PageExtractor,
	parser *billextract.Parser,
	v *verifier.Verifier,
	catalogStore *catalog.Store,
	cfg common.PipelineConfig,
	logger *slog.Logger,
) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		service:   service,
		repo:      repo,
		extractor: extractor,
		parser:    parser,
		verifier:  v,
		catalog:   catalogStore,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run loops until ctx is done: reconcile stale queue state, claim the
// next job, process it, then sleep on the wake event. Errors from lease
// management are logged and swallowed; the loop never crashes.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("pipeline.worker_started",
		"reconcile_interval", w.cfg.ReconcileInterval.String(),
		"lease_ttl", w.service.leaseTTL().String(),
	)
	lastReconcile := time.Time{}

	for {
		if ctx.Err() != nil {
			w.logger.Info("pipeline.worker_stopped")
			return
		}

		if time.Since(lastReconcile) >= w.cfg.ReconcileInterval {
			if _, err := w.repo.ReconcileQueueState(ctx, w.cfg.StaleProcessingTimeout); err != nil {
				w.logger.Error("pipeline.reconcile_failed", "error", err)
			}
			lastReconcile = time.Now()
		}

		rec, err := w.repo.ClaimNextPendingJob(ctx, w.service.leaseTTL())
		if err != nil {
			w.logger.Error("pipeline.claim_failed", "error", err)
			rec = nil
		}
		if rec == nil {
			select {
			case <-ctx.Done():
			case <-w.service.Wake():
			case <-time.After(w.cfg.ReconcileInterval):
			}
			continue
		}

		w.process(ctx, rec)
	}
}

// process runs one claimed job end to end. Any error marks the upload
// FAILED; staging cleanup runs in all cases.
func (w *Worker) process(ctx context.Context, rec *entity.UploadRecord) {
	start := time.Now()
	defer w.service.CleanupStaging(rec.UploadID)

	bill, err := w.extractBill(ctx, rec)
	if err != nil {
		w.logger.Error("pipeline.extraction_failed",
			"upload_id", rec.UploadID, "error", err)
		_ = w.repo.MarkFailed(ctx, rec.UploadID, err.Error())
		return
	}

	if err := w.repo.CompleteBill(ctx, rec.UploadID, bill); err != nil {
		w.logger.Error("pipeline.complete_failed",
			"upload_id", rec.UploadID, "error", err)
		_ = w.repo.MarkFailed(ctx, rec.UploadID, err.Error())
		return
	}

	// Verification runs as part of the upload lifecycle so the details
	// view never has to trigger it. Its failure leaves the bill COMPLETED.
	if err := w.VerifyStored(ctx, rec.UploadID); err != nil {
		w.logger.Warn("pipeline.auto_verification_failed",
			"upload_id", rec.UploadID, "error", err)
	}

	w.logger.Info("pipeline.job_done",
		"upload_id", rec.UploadID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}

func (w *Worker) extractBill(ctx context.Context, rec *entity.UploadRecord) (*entity.BillDocument, error) {
	pdfPath := w.service.StagedPDFPath(rec.UploadID)
	pages, warnings, err := w.extractor.ExtractPages(ctx, pdfPath)
	if err != nil {
		return nil, fmt.Errorf("ocr: %w", err)
	}
	return w.parser.Parse(pages, warnings), nil
}

// VerifyStored verifies the extracted bill persisted for uploadID and
// saves the result. It is the shared path for the worker's auto-run and
// the caller-facing re-verify operation.
func (w *Worker) VerifyStored(ctx context.Context, uploadID string) error {
	rec, err := w.repo.GetByID(ctx, uploadID)
	if err != nil {
		return err
	}
	if rec.Bill == nil {
		return fmt.Errorf("%w: upload %s has no extracted bill", common.ErrNotReady, uploadID)
	}
	snap := w.catalog.Snapshot()
	if snap == nil {
		return fmt.Errorf("%w: catalog not loaded", common.ErrCatalogLoad)
	}

	if _, err := w.repo.MarkVerificationProcessing(ctx, uploadID); err != nil {
		return err
	}

	in := rec.Bill.ToBillInput(rec.HospitalName, rec.Bill.CategoryOrder)
	result, err := w.verifier.VerifyBill(ctx, in, snap)
	if err != nil {
		_ = w.repo.MarkVerificationFailed(ctx, uploadID, err.Error())
		return err
	}

	// Diagnostic-only validations: logged and attached, never raised.
	if verr := render.ValidateCompleteness(in, result); verr != nil {
		result.Diagnostics = append(result.Diagnostics, verr.Error())
		w.logger.Error("pipeline.completeness_violation",
			"upload_id", uploadID, "error", verr)
	}
	if verr := render.ValidateCounters(result); verr != nil {
		result.Diagnostics = append(result.Diagnostics, verr.Error())
		w.logger.Error("pipeline.counter_violation",
			"upload_id", uploadID, "error", verr)
	}

	if err := w.repo.SaveVerificationResult(ctx, uploadID, result, render.Final(result)); err != nil {
		return err
	}
	return nil
}
