package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/gen/ent"
	"github.com/medassure/bill-verifier/gen/ent/upload"
	"github.com/medassure/bill-verifier/internal/artifact"
	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/entity"
)

// CreateUploadParams wraps the ingestion metadata for one upload.
type CreateUploadParams struct {
	IngestionRequestID string
	EmployeeID         string
	HospitalName       string
	OriginalFilename   string
	FileSizeBytes      int64
	InvoiceDate        *time.Time
}

// CreateResult reports whether the insert happened now or an earlier
// record with the same ingestion_request_id was reused.
type CreateResult struct {
	Record  *entity.UploadRecord
	Created bool
}

// ListFilter narrows List. Zero values mean "no constraint".
type ListFilter struct {
	Scope        string // "active" (default), "deleted", "all"
	Status       constants.UploadStatus
	HospitalName string
	From, To     *time.Time
	Limit        int
}

// ReconcileStats summarizes one queue reconcile sweep.
type ReconcileStats struct {
	Requeued int
	Staled   int
}

// Stats is the catalog-wide aggregate for dashboards.
type Stats struct {
	TotalBills    int     `json:"total_bills"`
	TotalBilled   float64 `json:"total_billed"`
	AvgBillAmount float64 `json:"avg_bill_amount"`
}

// UploadRepository is the state-store contract of the processing core.
// Every lifecycle transition is a conditional update: the row count tells
// the caller whether its compare-and-set won.
type UploadRepository interface {
	CreateUploadRecord(ctx context.Context, p CreateUploadParams) (*CreateResult, error)
	EnqueueUploadJob(ctx context.Context, uploadID string) (int, error)
	ClaimNextPendingJob(ctx context.Context, leaseTTL time.Duration) (*entity.UploadRecord, error)
	MarkProcessing(ctx context.Context, uploadID string) error
	CompleteBill(ctx context.Context, uploadID string, bill *entity.BillDocument) error
	MarkFailed(ctx context.Context, uploadID, errorMessage string) error

	MarkVerificationProcessing(ctx context.Context, uploadID string) (bool, error)
	SaveVerificationResult(ctx context.Context, uploadID string, result *entity.VerificationResult, renderedText string) error
	MarkVerificationFailed(ctx context.Context, uploadID, errorMessage string) error

	SaveLineItemEdits(ctx context.Context, uploadID string, edits []entity.LineItemEdit) error

	GetByID(ctx context.Context, uploadID string) (*entity.UploadRecord, error)
	List(ctx context.Context, f ListFilter) ([]*entity.UploadRecord, error)
	Statistics(ctx context.Context) (*Stats, error)

	SoftDelete(ctx context.Context, uploadID, deletedBy string) error
	Restore(ctx context.Context, uploadID string) error
	PermanentDelete(ctx context.Context, uploadID string) error
	HardDelete(ctx context.Context, uploadID string) error
	ListExpiredDeleted(ctx context.Context, cutoff time.Time) ([]string, error)

	RecomputePendingQueuePositions(ctx context.Context) error
	ReconcileQueueState(ctx context.Context, staleProcessing time.Duration) (ReconcileStats, error)
}

type uploadRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUploadRepository(client *ent.Client, logger *slog.Logger) UploadRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &uploadRepo{client: client, logger: logger}
}

func (r *uploadRepo) CreateUploadRecord(ctx context.Context, p CreateUploadParams) (*CreateResult, error) {
	if p.IngestionRequestID != "" {
		existing, err := r.client.Upload.Query().
			Where(upload.IngestionRequestID(p.IngestionRequestID)).
			Only(ctx)
		switch {
		case err == nil:
			// Non-failed duplicates are returned idempotently; a failed
			// record is reused so the retry can re-enqueue it.
			return &CreateResult{Record: toRecord(existing), Created: false}, nil
		case !ent.IsNotFound(err):
			return nil, fmt.Errorf("%w: lookup request id: %v", common.ErrStoreUnavailable, err)
		}
	}

	create := r.client.Upload.Create().
		SetEmployeeID(p.EmployeeID).
		SetHospitalName(p.HospitalName).
		SetOriginalFilename(p.OriginalFilename).
		SetFileSizeBytes(p.FileSizeBytes).
		SetStatus(string(constants.UploadStatusPending))
	if p.IngestionRequestID != "" {
		create.SetIngestionRequestID(p.IngestionRequestID)
	}
	if p.InvoiceDate != nil {
		create.SetInvoiceDate(*p.InvoiceDate)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) && p.IngestionRequestID != "" {
			// Lost an insert race; the winner's record is authoritative.
			existing, qerr := r.client.Upload.Query().
				Where(upload.IngestionRequestID(p.IngestionRequestID)).
				Only(ctx)
			if qerr == nil {
				return &CreateResult{Record: toRecord(existing), Created: false}, nil
			}
		}
		r.logger.Error("uploads.create_failed", "error", err)
		return nil, fmt.Errorf("%w: insert upload: %v", common.ErrStoreUnavailable, err)
	}
	r.logger.Info("uploads.created",
		"upload_id", row.ID,
		"employee_id", p.EmployeeID,
		"hospital", p.HospitalName,
		"size_bytes", p.FileSizeBytes,
	)
	return &CreateResult{Record: toRecord(row), Created: true}, nil
}

func (r *uploadRepo) EnqueueUploadJob(ctx context.Context, uploadID string) (int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: begin tx: %v", common.ErrStoreUnavailable, err)
	}
	pos, err := r.enqueueInTx(ctx, tx, uploadID)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit enqueue: %v", common.ErrStoreUnavailable, err)
	}
	r.logger.Info("uploads.enqueued", "upload_id", uploadID, "queue_position", pos)
	return pos, nil
}

func (r *uploadRepo) enqueueInTx(ctx context.Context, tx *ent.Tx, uploadID string) (int, error) {
	row, err := tx.Upload.Get(ctx, uploadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, common.ErrNotFound
		}
		return 0, fmt.Errorf("%w: load upload: %v", common.ErrStoreUnavailable, err)
	}
	// Already queued: keep the existing position (idempotent enqueue).
	if row.Status == string(constants.UploadStatusPending) && row.QueuePosition > 0 {
		return row.QueuePosition, nil
	}

	maxPos, err := tx.Upload.Query().
		Where(
			upload.StatusEQ(string(constants.UploadStatusPending)),
			upload.IsDeleted(false),
		).
		Aggregate(ent.Max(upload.FieldQueuePosition)).
		Int(ctx)
	if err != nil {
		// Empty queue aggregates to NULL; treat as zero.
		maxPos = 0
	}

	if _, err := tx.Upload.UpdateOneID(uploadID).
		SetStatus(string(constants.UploadStatusPending)).
		SetQueuePosition(maxPos + 1).
		ClearQueueLeaseExpiresAt().
		ClearErrorMessage().
		Save(ctx); err != nil {
		return 0, fmt.Errorf("%w: enqueue update: %v", common.ErrStoreUnavailable, err)
	}
	return maxPos + 1, nil
}

// ClaimNextPendingJob atomically claims the lowest-position PENDING job
// without an active lease. Returns nil when the queue is empty. At most
// one claimer wins any given record: the claim is a conditional update
// keyed on the status and lease the candidate was read with.
func (r *uploadRepo) ClaimNextPendingJob(ctx context.Context, leaseTTL time.Duration) (*entity.UploadRecord, error) {
	for attempt := 0; attempt < 5; attempt++ {
		now := time.Now()
		candidate, err := r.client.Upload.Query().
			Where(
				upload.StatusEQ(string(constants.UploadStatusPending)),
				upload.IsDeleted(false),
				upload.QueuePositionGT(0),
				upload.Or(
					upload.QueueLeaseExpiresAtIsNil(),
					upload.QueueLeaseExpiresAtLT(now),
				),
			).
			Order(ent.Asc(upload.FieldQueuePosition)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: scan queue: %v", common.ErrStoreUnavailable, err)
		}

		n, err := r.client.Upload.Update().
			Where(
				upload.ID(candidate.ID),
				upload.StatusEQ(string(constants.UploadStatusPending)),
				upload.IsDeleted(false),
				upload.Or(
					upload.QueueLeaseExpiresAtIsNil(),
					upload.QueueLeaseExpiresAtLT(now),
				),
			).
			SetStatus(string(constants.UploadStatusProcessing)).
			SetQueueLeaseExpiresAt(now.Add(leaseTTL)).
			SetProcessingStartedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: claim update: %v", common.ErrStoreUnavailable, err)
		}
		if n == 1 {
			row, err := r.client.Upload.Get(ctx, candidate.ID)
			if err != nil {
				return nil, fmt.Errorf("%w: reload claimed job: %v", common.ErrStoreUnavailable, err)
			}
			r.logger.Info("uploads.claimed",
				"upload_id", row.ID, "queue_position", row.QueuePosition)
			return toRecord(row), nil
		}
		// Another claimer won this record; try the next candidate.
	}
	return nil, nil
}

// MarkProcessing is the CLI/direct path: PENDING or FAILED moves to
// PROCESSING; a second call is a no-op and keeps the original
// processing_started_at.
func (r *uploadRepo) MarkProcessing(ctx context.Context, uploadID string) error {
	n, err := r.client.Upload.Update().
		Where(
			upload.ID(uploadID),
			upload.StatusIn(
				string(constants.UploadStatusPending),
				string(constants.UploadStatusFailed),
			),
		).
		SetStatus(string(constants.UploadStatusProcessing)).
		SetProcessingStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: mark processing: %v", common.ErrStoreUnavailable, err)
	}
	if n == 0 {
		// Either already PROCESSING (fine) or missing.
		if _, err := r.mustExist(ctx, uploadID); err != nil {
			return err
		}
	}
	return nil
}

func (r *uploadRepo) CompleteBill(ctx context.Context, uploadID string, bill *entity.BillDocument) error {
	filtered := filterArtifacts(bill, r.logger)

	raw, err := json.Marshal(filtered)
	if err != nil {
		return fmt.Errorf("marshal bill: %w", err)
	}

	row, err := r.mustExist(ctx, uploadID)
	if err != nil {
		return err
	}

	now := time.Now()
	update := r.client.Upload.Update().
		Where(
			upload.ID(uploadID),
			upload.StatusIn(
				string(constants.UploadStatusProcessing),
				string(constants.UploadStatusCompleted),
			),
		).
		SetStatus(string(constants.UploadStatusCompleted)).
		SetBill(raw).
		SetGrandTotal(filtered.GrandTotal).
		SetPageCount(filtered.PageCount).
		SetCompletedAt(now).
		SetQueuePosition(0).
		ClearQueueLeaseExpiresAt()

	if started := row.ProcessingStartedAt; started != nil {
		secs := now.Sub(*started).Seconds()
		if secs < 0 {
			secs = 0
		}
		update.SetProcessingTimeSeconds(float64(int(secs*1000)) / 1000)
	}
	// Promote the extracted billing date when ingestion had none.
	if row.InvoiceDate == nil && filtered.Header.BillingDate != "" {
		if d, perr := time.Parse("2006-01-02", filtered.Header.BillingDate); perr == nil {
			update.SetInvoiceDate(d)
		}
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: complete bill: %v", common.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: upload %s not in a completable state", common.ErrNotReady, uploadID)
	}
	r.logger.Info("uploads.completed",
		"upload_id", uploadID,
		"grand_total", filtered.GrandTotal,
		"pages", filtered.PageCount,
	)
	return nil
}

func (r *uploadRepo) MarkFailed(ctx context.Context, uploadID, errorMessage string) error {
	n, err := r.client.Upload.Update().
		Where(upload.ID(uploadID)).
		SetStatus(string(constants.UploadStatusFailed)).
		SetErrorMessage(common.TruncateError(errorMessage, 2000)).
		SetQueuePosition(0).
		ClearQueueLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: mark failed: %v", common.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	r.logger.Warn("uploads.failed", "upload_id", uploadID, "error", errorMessage)
	return nil
}

func (r *uploadRepo) MarkVerificationProcessing(ctx context.Context, uploadID string) (bool, error) {
	n, err := r.client.Upload.Update().
		Where(
			upload.ID(uploadID),
			upload.VerificationStatusNotIn(
				string(constants.VerificationStatusProcessing),
				string(constants.VerificationStatusCompleted),
			),
		).
		SetVerificationStatus(string(constants.VerificationStatusProcessing)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: mark verification processing: %v", common.ErrStoreUnavailable, err)
	}
	return n == 1, nil
}

func (r *uploadRepo) SaveVerificationResult(ctx context.Context, uploadID string, result *entity.VerificationResult, renderedText string) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal verification result: %w", err)
	}
	n, err := r.client.Upload.Update().
		Where(upload.ID(uploadID)).
		SetVerificationStatus(string(constants.VerificationStatusCompleted)).
		SetVerificationResult(raw).
		SetVerificationResultText(renderedText).
		ClearVerificationError().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: save verification result: %v", common.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	r.logger.Info("uploads.verification_saved",
		"upload_id", uploadID,
		"balanced", result.FinancialsBalanced,
	)
	return nil
}

func (r *uploadRepo) MarkVerificationFailed(ctx context.Context, uploadID, errorMessage string) error {
	n, err := r.client.Upload.Update().
		Where(upload.ID(uploadID)).
		SetVerificationStatus(string(constants.VerificationStatusFailed)).
		SetVerificationError(common.TruncateError(errorMessage, 2000)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: mark verification failed: %v", common.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// SaveLineItemEdits replaces the edits array. The extracted bill itself is
// never mutated.
func (r *uploadRepo) SaveLineItemEdits(ctx context.Context, uploadID string, edits []entity.LineItemEdit) error {
	n, err := r.client.Upload.Update().
		Where(upload.ID(uploadID)).
		SetLineItemEdits(edits).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: save edits: %v", common.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *uploadRepo) GetByID(ctx context.Context, uploadID string) (*entity.UploadRecord, error) {
	row, err := r.client.Upload.Get(ctx, uploadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: get upload: %v", common.ErrStoreUnavailable, err)
	}
	return toRecord(row), nil
}

func (r *uploadRepo) List(ctx context.Context, f ListFilter) ([]*entity.UploadRecord, error) {
	q := r.client.Upload.Query()
	switch f.Scope {
	case "all":
	case "deleted":
		q = q.Where(upload.IsDeleted(true))
	default:
		q = q.Where(upload.IsDeleted(false))
	}
	if f.Status != "" {
		q = q.Where(upload.StatusEQ(string(f.Status)))
	}
	if f.HospitalName != "" {
		q = q.Where(upload.HospitalNameEqualFold(f.HospitalName))
	}
	if f.From != nil {
		q = q.Where(upload.CreatedAtGTE(*f.From))
	}
	if f.To != nil {
		q = q.Where(upload.CreatedAtLTE(*f.To))
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 500
	}
	rows, err := q.
		Order(ent.Desc(upload.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list uploads: %v", common.ErrStoreUnavailable, err)
	}
	return toRecords(rows), nil
}

func (r *uploadRepo) Statistics(ctx context.Context) (*Stats, error) {
	var rows []struct {
		Count int     `json:"count"`
		Sum   float64 `json:"sum"`
		Mean  float64 `json:"mean"`
	}
	err := r.client.Upload.Query().
		Where(upload.IsDeleted(false)).
		Aggregate(
			ent.As(ent.Count(), "count"),
			ent.As(ent.Sum(upload.FieldGrandTotal), "sum"),
			ent.As(ent.Mean(upload.FieldGrandTotal), "mean"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("%w: statistics: %v", common.ErrStoreUnavailable, err)
	}
	if len(rows) == 0 {
		return &Stats{}, nil
	}
	return &Stats{
		TotalBills:    rows[0].Count,
		TotalBilled:   rows[0].Sum,
		AvgBillAmount: rows[0].Mean,
	}, nil
}

func (r *uploadRepo) SoftDelete(ctx context.Context, uploadID, deletedBy string) error {
	now := time.Now()
	update := r.client.Upload.Update().
		Where(upload.ID(uploadID), upload.IsDeleted(false)).
		SetIsDeleted(true).
		SetDeletedAt(now).
		SetQueuePosition(0)
	if deletedBy != "" {
		update.SetDeletedBy(deletedBy)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: soft delete: %v", common.ErrStoreUnavailable, err)
	}
	if n == 0 {
		row, err := r.mustExist(ctx, uploadID)
		if err != nil {
			return err
		}
		if row.IsDeleted {
			return common.ErrAlreadyDeleted
		}
		return fmt.Errorf("%w: soft delete %s", common.ErrStoreUnavailable, uploadID)
	}
	r.logger.Info("uploads.soft_deleted", "upload_id", uploadID, "deleted_by", deletedBy)
	return r.RecomputePendingQueuePositions(ctx)
}

func (r *uploadRepo) Restore(ctx context.Context, uploadID string) error {
	n, err := r.client.Upload.Update().
		Where(upload.ID(uploadID), upload.IsDeleted(true)).
		SetIsDeleted(false).
		ClearDeletedAt().
		ClearDeletedBy().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: restore: %v", common.ErrStoreUnavailable, err)
	}
	if n == 0 {
		row, err := r.mustExist(ctx, uploadID)
		if err != nil {
			return err
		}
		if !row.IsDeleted {
			return common.ErrNotDeleted
		}
		return fmt.Errorf("%w: restore %s", common.ErrStoreUnavailable, uploadID)
	}
	r.logger.Info("uploads.restored", "upload_id", uploadID)
	return r.RecomputePendingQueuePositions(ctx)
}

// PermanentDelete removes a soft-deleted row for good. Active rows are
// refused: soft-delete first.
func (r *uploadRepo) PermanentDelete(ctx context.Context, uploadID string) error {
	n, err := r.client.Upload.Delete().
		Where(upload.ID(uploadID), upload.IsDeleted(true)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: permanent delete: %v", common.ErrStoreUnavailable, err)
	}
	if n == 0 {
		row, err := r.mustExist(ctx, uploadID)
		if err != nil {
			return err
		}
		if !row.IsDeleted {
			return common.ErrNotDeleted
		}
	}
	r.logger.Info("uploads.permanently_deleted", "upload_id", uploadID)
	return nil
}

// HardDelete removes the row unconditionally (admin path).
func (r *uploadRepo) HardDelete(ctx context.Context, uploadID string) error {
	n, err := r.client.Upload.Delete().
		Where(upload.ID(uploadID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: hard delete: %v", common.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	r.logger.Warn("uploads.hard_deleted", "upload_id", uploadID)
	return nil
}

func (r *uploadRepo) ListExpiredDeleted(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := r.client.Upload.Query().
		Where(
			upload.IsDeleted(true),
			upload.DeletedAtLTE(cutoff),
		).
		Select(upload.FieldID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list expired deleted: %v", common.ErrStoreUnavailable, err)
	}
	return rows, nil
}

// RecomputePendingQueuePositions renumbers the PENDING queue 1..n so the
// queue view stays contiguous after deletes, restores, and failures.
func (r *uploadRepo) RecomputePendingQueuePositions(ctx context.Context) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", common.ErrStoreUnavailable, err)
	}
	if err := recomputeInTx(ctx, tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit renumber: %v", common.ErrStoreUnavailable, err)
	}
	return nil
}

func recomputeInTx(ctx context.Context, tx *ent.Tx) error {
	rows, err := tx.Upload.Query().
		Where(
			upload.StatusEQ(string(constants.UploadStatusPending)),
			upload.IsDeleted(false),
		).
		Order(ent.Asc(upload.FieldQueuePosition), ent.Asc(upload.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("%w: scan pending: %v", common.ErrStoreUnavailable, err)
	}
	for i, row := range rows {
		want := i + 1
		if row.QueuePosition == want {
			continue
		}
		if _, err := tx.Upload.UpdateOneID(row.ID).
			SetQueuePosition(want).
			Save(ctx); err != nil {
			return fmt.Errorf("%w: renumber %s: %v", common.ErrStoreUnavailable, row.ID, err)
		}
	}
	return nil
}

// ReconcileQueueState recovers crashed workers: PROCESSING rows whose
// lease expired go back to PENDING for a retry; unleased PROCESSING rows
// older than staleProcessing are demoted to FAILED.
func (r *uploadRepo) ReconcileQueueState(ctx context.Context, staleProcessing time.Duration) (ReconcileStats, error) {
	var stats ReconcileStats
	now := time.Now()

	requeued, err := r.client.Upload.Update().
		Where(
			upload.StatusEQ(string(constants.UploadStatusProcessing)),
			upload.QueueLeaseExpiresAtNotNil(),
			upload.QueueLeaseExpiresAtLT(now),
		).
		SetStatus(string(constants.UploadStatusPending)).
		ClearQueueLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return stats, fmt.Errorf("%w: requeue expired leases: %v", common.ErrStoreUnavailable, err)
	}
	stats.Requeued = requeued

	if staleProcessing > 0 {
		staled, err := r.client.Upload.Update().
			Where(
				upload.StatusEQ(string(constants.UploadStatusProcessing)),
				upload.QueueLeaseExpiresAtIsNil(),
				upload.ProcessingStartedAtNotNil(),
				upload.ProcessingStartedAtLT(now.Add(-staleProcessing)),
			).
			SetStatus(string(constants.UploadStatusFailed)).
			SetErrorMessage("stale: processing exceeded the stale timeout without a lease refresh").
			Save(ctx)
		if err != nil {
			return stats, fmt.Errorf("%w: demote stale processing: %v", common.ErrStoreUnavailable, err)
		}
		stats.Staled = staled
	}

	if stats.Requeued > 0 || stats.Staled > 0 {
		r.logger.Warn("uploads.queue_reconciled",
			"requeued", stats.Requeued, "staled", stats.Staled)
		if err := r.RecomputePendingQueuePositions(ctx); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (r *uploadRepo) mustExist(ctx context.Context, uploadID string) (*ent.Upload, error) {
	row, err := r.client.Upload.Get(ctx, uploadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: get upload: %v", common.ErrStoreUnavailable, err)
	}
	return row, nil
}

// filterArtifacts drops header artifacts from the extracted bill before
// persistence, removing categories left empty. Residual artifacts after
// the filter are a logged defect, never a rejection.
func filterArtifacts(bill *entity.BillDocument, logger *slog.Logger) *entity.BillDocument {
	if bill == nil || len(bill.Items) == 0 {
		return bill
	}
	out := *bill
	out.Items = make(map[string][]entity.ItemRow, len(bill.Items))
	var order []string
	dropped := 0

	keys := append([]string(nil), bill.CategoryOrder...)
	var rest []string
	for k := range bill.Items {
		if !contains(keys, k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)
	seen := map[string]bool{}
	for _, category := range keys {
		items, ok := bill.Items[category]
		if !ok || seen[category] {
			continue
		}
		seen[category] = true
		var kept []entity.ItemRow
		for _, it := range items {
			if artifact.Detect(category, it.ItemName, it.Amount, it.Amount) {
				dropped++
				logger.Warn("uploads.artifact_filtered",
					"category", category, "item", it.ItemName, "amount", it.Amount)
				continue
			}
			kept = append(kept, it)
		}
		if len(kept) > 0 {
			out.Items[category] = kept
			order = append(order, category)
		}
	}
	out.CategoryOrder = order
	if dropped > 0 {
		logger.Info("uploads.artifacts_filtered", "count", dropped)
	}
	return &out
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
