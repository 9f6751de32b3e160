// Package pipeline accepts uploads, stages their bytes, and drives each
// queued job through OCR, extraction, and verification from a single
// background worker.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/catalog"
	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/entity"
	"github.com/medassure/bill-verifier/internal/repository"
)

// SubmitParams is one upload request.
type SubmitParams struct {
	Bytes           []byte
	Filename        string
	EmployeeID      string
	HospitalName    string
	ClientRequestID string
	InvoiceDate     string
}

// SubmitResult echoes the accepted (or reused) record.
type SubmitResult struct {
	Record   *entity.UploadRecord
	Existing bool
}

// Service is the acceptance-path half of the pipeline: it only touches
// the state store and the staging directory, never OCR or verification.
type Service struct {
	repo    repository.UploadRepository
	catalog *catalog.Store
	cfg     common.PipelineConfig
	logger  *slog.Logger
	wake    chan struct{}
}

func NewService(repo repository.UploadRepository, catalogStore *catalog.Store, cfg common.PipelineConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:    repo,
		catalog: catalogStore,
		cfg:     cfg,
		logger:  logger,
		wake:    make(chan struct{}, 1),
	}
}

// Wake returns the worker wake channel; enqueues signal it so an idle
// worker picks new jobs up immediately.
func (s *Service) Wake() <-chan struct{} { return s.wake }

func (s *Service) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// SubmitUpload validates, persists, stages, and enqueues one PDF.
// Duplicate ingestion_request_ids return the earlier record without
// creating or enqueuing anything new (unless it had FAILED, which is
// retried).
func (s *Service) SubmitUpload(ctx context.Context, p SubmitParams) (*SubmitResult, error) {
	filename := filepath.Base(strings.TrimSpace(p.Filename))
	if err := common.ValidatePDFUpload(filename, len(p.Bytes)); err != nil {
		return nil, err
	}
	if err := common.ValidateEmployeeID(p.EmployeeID); err != nil {
		return nil, err
	}
	if err := common.ValidateHospitalName(p.HospitalName); err != nil {
		return nil, err
	}
	hospital := strings.TrimSpace(p.HospitalName)
	if snap := s.catalog.Snapshot(); snap != nil {
		if _, err := snap.Get(hospital); err != nil {
			return nil, fmt.Errorf("%w: no tie-up rate sheet for hospital %q", common.ErrInvalidInput, hospital)
		}
	}
	invoiceDate, err := common.ParseInvoiceDate(p.InvoiceDate)
	if err != nil {
		return nil, err
	}

	requestID := strings.TrimSpace(p.ClientRequestID)
	if requestID == "" {
		requestID = ingestionRequestID(p.EmployeeID, hospital, p.Bytes)
	}

	params := repository.CreateUploadParams{
		IngestionRequestID: requestID,
		EmployeeID:         strings.TrimSpace(p.EmployeeID),
		HospitalName:       hospital,
		OriginalFilename:   filename,
		FileSizeBytes:      int64(len(p.Bytes)),
		InvoiceDate:        invoiceDate,
	}
	created, err := s.repo.CreateUploadRecord(ctx, params)
	if errors.Is(err, common.ErrStoreUnavailable) {
		// One retry on store transport failure; after that the error is
		// the caller's.
		s.logger.Warn("pipeline.create_retry", "error", err)
		created, err = s.repo.CreateUploadRecord(ctx, params)
	}
	if err != nil {
		return nil, err
	}
	rec := created.Record

	if !created.Created && rec.Status != constants.UploadStatusFailed {
		s.logger.Info("pipeline.duplicate_upload",
			"upload_id", rec.UploadID, "status", rec.Status)
		return &SubmitResult{Record: rec, Existing: true}, nil
	}

	if err := s.stagePDF(rec.UploadID, p.Bytes); err != nil {
		_ = s.repo.MarkFailed(ctx, rec.UploadID, "stage pdf: "+err.Error())
		return nil, err
	}

	if _, err := s.repo.EnqueueUploadJob(ctx, rec.UploadID); err != nil {
		return nil, err
	}
	s.signal()

	rec, err = s.repo.GetByID(ctx, rec.UploadID)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Record: rec, Existing: !created.Created}, nil
}

// StagedPDFPath is where an upload's original bytes live while queued.
func (s *Service) StagedPDFPath(uploadID string) string {
	return filepath.Join(s.cfg.UploadsDir, uploadID, "original.pdf")
}

func (s *Service) stagePDF(uploadID string, pdf []byte) error {
	dir := filepath.Join(s.cfg.UploadsDir, uploadID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "original.pdf"), pdf, 0o644); err != nil {
		return fmt.Errorf("write staged pdf: %w", err)
	}
	return nil
}

// CleanupStaging removes an upload's staging directory (original PDF and
// derived page images). Errors are logged, never propagated: cleanup runs
// after both success and failure.
func (s *Service) CleanupStaging(uploadID string) {
	dir := filepath.Join(s.cfg.UploadsDir, uploadID)
	if err := os.RemoveAll(dir); err != nil {
		s.logger.Warn("pipeline.cleanup_failed", "upload_id", uploadID, "error", err)
	}
}

// ingestionRequestID derives the idempotency key when the caller supplies
// none: a hash over the employee, hospital, and content digest.
func ingestionRequestID(employeeID, hospitalName string, pdf []byte) string {
	content := sha256.Sum256(pdf)
	h := sha256.New()
	h.Write([]byte(strings.TrimSpace(employeeID)))
	h.Write([]byte("::"))
	h.Write([]byte(strings.ToLower(strings.TrimSpace(hospitalName))))
	h.Write([]byte("::"))
	h.Write(content[:])
	return hex.EncodeToString(h.Sum(nil))
}

func (s *Service) leaseTTL() time.Duration {
	if s.cfg.LeaseTTL > 0 {
		return s.cfg.LeaseTTL
	}
	return 10 * time.Minute
}
