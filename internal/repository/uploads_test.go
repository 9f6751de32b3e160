package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/entity"
)

func openTestRepo(t *testing.T) UploadRepository {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "bills.db") + "?_pragma=foreign_keys(1)"
	client, err := OpenSQLite(dsn, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatal(err)
	}
	return NewUploadRepository(client, nil)
}

func createParams(reqID string) CreateUploadParams {
	return CreateUploadParams{
		IngestionRequestID: reqID,
		EmployeeID:         "12345678",
		HospitalName:       "Apollo Hospital",
		OriginalFilename:   "bill.pdf",
		FileSizeBytes:      1024,
	}
}

func mustCreate(t *testing.T, repo UploadRepository, reqID string) *entity.UploadRecord {
	t.Helper()
	res, err := repo.CreateUploadRecord(context.Background(), createParams(reqID))
	if err != nil {
		t.Fatal(err)
	}
	return res.Record
}

func mustEnqueue(t *testing.T, repo UploadRepository, id string) int {
	t.Helper()
	pos, err := repo.EnqueueUploadJob(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	return pos
}

func TestCreateUploadRecordIdempotent(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateUploadRecord(ctx, createParams("req-1"))
	if err != nil {
		t.Fatal(err)
	}
	if !first.Created {
		t.Fatal("first call must create")
	}
	if first.Record.Status != constants.UploadStatusPending {
		t.Errorf("status = %v, want PENDING", first.Record.Status)
	}

	second, err := repo.CreateUploadRecord(ctx, createParams("req-1"))
	if err != nil {
		t.Fatal(err)
	}
	if second.Created {
		t.Error("duplicate request id must not create a second record")
	}
	if second.Record.UploadID != first.Record.UploadID {
		t.Errorf("duplicate must return the same upload id: %s vs %s",
			second.Record.UploadID, first.Record.UploadID)
	}

	rows, err := repo.List(ctx, ListFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("exactly one record must exist, got %d", len(rows))
	}
}

func TestEnqueueAssignsContiguousPositions(t *testing.T) {
	repo := openTestRepo(t)
	for i := 1; i <= 3; i++ {
		rec := mustCreate(t, repo, fmt.Sprintf("req-%d", i))
		if pos := mustEnqueue(t, repo, rec.UploadID); pos != i {
			t.Errorf("position = %d, want %d", pos, i)
		}
	}
}

func TestEnqueueIsIdempotentForPending(t *testing.T) {
	repo := openTestRepo(t)
	rec := mustCreate(t, repo, "req-1")
	p1 := mustEnqueue(t, repo, rec.UploadID)
	p2 := mustEnqueue(t, repo, rec.UploadID)
	if p1 != p2 {
		t.Errorf("re-enqueue of a pending job must keep its position: %d vs %d", p1, p2)
	}
}

func TestClaimNextPendingJobFIFOAndSingleClaim(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	a := mustCreate(t, repo, "req-a")
	b := mustCreate(t, repo, "req-b")
	mustEnqueue(t, repo, a.UploadID)
	mustEnqueue(t, repo, b.UploadID)

	got, err := repo.ClaimNextPendingJob(ctx, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.UploadID != a.UploadID {
		t.Fatalf("claim must follow queue order, got %+v", got)
	}
	if got.Status != constants.UploadStatusProcessing {
		t.Errorf("claimed status = %v, want PROCESSING", got.Status)
	}
	if got.QueueLeaseExpires == nil || got.ProcessingStarted == nil {
		t.Error("claim must set lease and processing_started_at")
	}

	// The claimed record must not be claimable again while leased.
	second, err := repo.ClaimNextPendingJob(ctx, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if second == nil || second.UploadID != b.UploadID {
		t.Fatalf("second claim must take the next job, got %+v", second)
	}

	third, err := repo.ClaimNextPendingJob(ctx, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if third != nil {
		t.Fatalf("empty queue must claim nil, got %+v", third)
	}
}

func TestLeaseExpiryReclaim(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	rec := mustCreate(t, repo, "req-1")
	mustEnqueue(t, repo, rec.UploadID)

	// Claim with an already-expired lease to simulate a dead worker.
	claimed, err := repo.ClaimNextPendingJob(ctx, -time.Second)
	if err != nil || claimed == nil {
		t.Fatal(err)
	}

	stats, err := repo.ReconcileQueueState(ctx, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Requeued != 1 {
		t.Fatalf("expected 1 requeued job, got %+v", stats)
	}

	row, err := repo.GetByID(ctx, rec.UploadID)
	if err != nil {
		t.Fatal(err)
	}
	if row.Status != constants.UploadStatusPending || row.QueuePosition != 1 {
		t.Errorf("reconciled row = %v pos %d, want PENDING pos 1", row.Status, row.QueuePosition)
	}

	// The job is claimable again and completable (S6).
	again, err := repo.ClaimNextPendingJob(ctx, time.Minute)
	if err != nil || again == nil {
		t.Fatalf("reclaim failed: %v %v", again, err)
	}
	if err := repo.CompleteBill(ctx, rec.UploadID, minimalBill()); err != nil {
		t.Fatal(err)
	}
}

func TestStaleProcessingDemotedToFailed(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	rec := mustCreate(t, repo, "req-1")
	if err := repo.MarkProcessing(ctx, rec.UploadID); err != nil {
		t.Fatal(err)
	}

	// No lease (CLI path); immediately stale with a zero-ish timeout.
	time.Sleep(10 * time.Millisecond)
	stats, err := repo.ReconcileQueueState(ctx, time.Nanosecond)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Staled != 1 {
		t.Fatalf("expected 1 staled job, got %+v", stats)
	}
	row, _ := repo.GetByID(ctx, rec.UploadID)
	if row.Status != constants.UploadStatusFailed {
		t.Errorf("status = %v, want FAILED", row.Status)
	}
}

func TestMarkProcessingIdempotent(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	rec := mustCreate(t, repo, "req-1")

	if err := repo.MarkProcessing(ctx, rec.UploadID); err != nil {
		t.Fatal(err)
	}
	first, _ := repo.GetByID(ctx, rec.UploadID)
	if first.Status != constants.UploadStatusProcessing || first.ProcessingStarted == nil {
		t.Fatalf("unexpected state after first call: %+v", first)
	}

	time.Sleep(10 * time.Millisecond)
	if err := repo.MarkProcessing(ctx, rec.UploadID); err != nil {
		t.Fatal(err)
	}
	second, _ := repo.GetByID(ctx, rec.UploadID)
	if !second.ProcessingStarted.Equal(*first.ProcessingStarted) {
		t.Error("processing_started_at must be set on the first call only")
	}
}

func minimalBill() *entity.BillDocument {
	return &entity.BillDocument{
		Items: map[string][]entity.ItemRow{
			"Consultation": {{ItemName: "Consultation", Amount: 1500}},
		},
		CategoryOrder: []string{"Consultation"},
		GrandTotal:    1500,
		PageCount:     2,
	}
}

func TestCompleteBillFiltersArtifacts(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	rec := mustCreate(t, repo, "req-1")
	if err := repo.MarkProcessing(ctx, rec.UploadID); err != nil {
		t.Fatal(err)
	}

	bill := &entity.BillDocument{
		Items: map[string][]entity.ItemRow{
			"Hospital - ":  {{ItemName: "UNKNOWN", Amount: 0}},
			"Consultation": {{ItemName: "Consultation", Amount: 1500}},
		},
		CategoryOrder: []string{"Hospital - ", "Consultation"},
		GrandTotal:    1500,
		PageCount:     1,
	}
	if err := repo.CompleteBill(ctx, rec.UploadID, bill); err != nil {
		t.Fatal(err)
	}

	row, err := repo.GetByID(ctx, rec.UploadID)
	if err != nil {
		t.Fatal(err)
	}
	if row.Status != constants.UploadStatusCompleted || row.Bill == nil {
		t.Fatalf("unexpected completed row: %+v", row)
	}
	if _, leaked := row.Bill.Items["Hospital - "]; leaked {
		t.Error("artifact category must be filtered before persistence")
	}
	if len(row.Bill.Items["Consultation"]) != 1 {
		t.Error("real items must survive the artifact filter")
	}
	if row.CompletedAt == nil || row.PageCount == nil || *row.PageCount != 1 {
		t.Errorf("completion metadata missing: %+v", row)
	}
}

func TestCompleteBillRequiresProcessing(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	rec := mustCreate(t, repo, "req-1")
	if err := repo.CompleteBill(ctx, rec.UploadID, minimalBill()); err == nil {
		t.Error("completing a PENDING record must fail")
	}
}

func TestMarkFailedClearsLease(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	rec := mustCreate(t, repo, "req-1")
	mustEnqueue(t, repo, rec.UploadID)
	if _, err := repo.ClaimNextPendingJob(ctx, time.Minute); err != nil {
		t.Fatal(err)
	}

	if err := repo.MarkFailed(ctx, rec.UploadID, "ocr exploded"); err != nil {
		t.Fatal(err)
	}
	row, _ := repo.GetByID(ctx, rec.UploadID)
	if row.Status != constants.UploadStatusFailed || row.QueueLeaseExpires != nil {
		t.Errorf("failed row must drop its lease: %+v", row)
	}
	if row.ErrorMessage == nil || *row.ErrorMessage != "ocr exploded" {
		t.Errorf("error message missing: %+v", row)
	}
}

func TestVerificationLifecycle(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	rec := mustCreate(t, repo, "req-1")

	ok, err := repo.MarkVerificationProcessing(ctx, rec.UploadID)
	if err != nil || !ok {
		t.Fatalf("first mark must win: %v %v", ok, err)
	}
	ok, err = repo.MarkVerificationProcessing(ctx, rec.UploadID)
	if err != nil || ok {
		t.Fatalf("second mark must be a no-op: %v %v", ok, err)
	}

	result := &entity.VerificationResult{
		HospitalName:       "Apollo Hospital",
		FinancialsBalanced: true,
	}
	if err := repo.SaveVerificationResult(ctx, rec.UploadID, result, "rendered"); err != nil {
		t.Fatal(err)
	}
	row, _ := repo.GetByID(ctx, rec.UploadID)
	if row.VerificationStatus != constants.VerificationStatusCompleted {
		t.Errorf("verification status = %v", row.VerificationStatus)
	}
	if row.VerificationResultText == nil || *row.VerificationResultText != "rendered" {
		t.Error("rendered text not persisted")
	}
}

func TestSoftDeleteRestorePermanentDelete(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	rec := mustCreate(t, repo, "req-1")

	if err := repo.SoftDelete(ctx, rec.UploadID, "tester"); err != nil {
		t.Fatal(err)
	}
	if err := repo.SoftDelete(ctx, rec.UploadID, "tester"); err == nil {
		t.Error("double soft delete must fail with AlreadyDeleted")
	}

	// Deleted records leave active listings.
	active, _ := repo.List(ctx, ListFilter{})
	if len(active) != 0 {
		t.Errorf("deleted record leaked into active list: %d", len(active))
	}
	deleted, _ := repo.List(ctx, ListFilter{Scope: "deleted"})
	if len(deleted) != 1 {
		t.Errorf("deleted scope should list it: %d", len(deleted))
	}

	if err := repo.Restore(ctx, rec.UploadID); err != nil {
		t.Fatal(err)
	}
	if err := repo.Restore(ctx, rec.UploadID); err == nil {
		t.Error("restoring an active record must fail with NotDeleted")
	}

	if err := repo.PermanentDelete(ctx, rec.UploadID); err == nil {
		t.Error("permanent delete of an active record must refuse")
	}
	if err := repo.SoftDelete(ctx, rec.UploadID, ""); err != nil {
		t.Fatal(err)
	}
	if err := repo.PermanentDelete(ctx, rec.UploadID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetByID(ctx, rec.UploadID); err == nil {
		t.Error("permanently deleted record must be gone")
	}
}

func TestSoftDeleteRenumbersQueue(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	a := mustCreate(t, repo, "req-a")
	b := mustCreate(t, repo, "req-b")
	c := mustCreate(t, repo, "req-c")
	mustEnqueue(t, repo, a.UploadID)
	mustEnqueue(t, repo, b.UploadID)
	mustEnqueue(t, repo, c.UploadID)

	if err := repo.SoftDelete(ctx, a.UploadID, ""); err != nil {
		t.Fatal(err)
	}
	rb, _ := repo.GetByID(ctx, b.UploadID)
	rc, _ := repo.GetByID(ctx, c.UploadID)
	if rb.QueuePosition != 1 || rc.QueuePosition != 2 {
		t.Errorf("queue not contiguous after delete: b=%d c=%d", rb.QueuePosition, rc.QueuePosition)
	}

	// The deleted record is skipped by the claimer.
	claimed, err := repo.ClaimNextPendingJob(ctx, time.Minute)
	if err != nil || claimed == nil || claimed.UploadID != b.UploadID {
		t.Fatalf("claimer must skip deleted records, got %+v (%v)", claimed, err)
	}
}

func TestListExpiredDeleted(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	rec := mustCreate(t, repo, "req-1")
	if err := repo.SoftDelete(ctx, rec.UploadID, ""); err != nil {
		t.Fatal(err)
	}

	none, err := repo.ListExpiredDeleted(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("fresh deletion must not be expired yet: %v", none)
	}

	due, err := repo.ListExpiredDeleted(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 1 || due[0] != rec.UploadID {
		t.Errorf("expected the record to be due, got %v", due)
	}
}

func TestLineItemEdits(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	rec := mustCreate(t, repo, "req-1")

	qty := 2.0
	edits := []entity.LineItemEdit{{CategoryName: "Pharmacy", ItemIndex: 0, Qty: &qty}}
	if err := repo.SaveLineItemEdits(ctx, rec.UploadID, edits); err != nil {
		t.Fatal(err)
	}
	row, _ := repo.GetByID(ctx, rec.UploadID)
	if len(row.LineItemEdits) != 1 || row.LineItemEdits[0].CategoryName != "Pharmacy" {
		t.Errorf("edits not persisted: %+v", row.LineItemEdits)
	}
}

func TestStatistics(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for i, total := range []float64{1000, 3000} {
		rec := mustCreate(t, repo, fmt.Sprintf("req-%d", i))
		if err := repo.MarkProcessing(ctx, rec.UploadID); err != nil {
			t.Fatal(err)
		}
		bill := minimalBill()
		bill.GrandTotal = total
		if err := repo.CompleteBill(ctx, rec.UploadID, bill); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := repo.Statistics(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalBills != 2 || stats.TotalBilled != 4000 || stats.AvgBillAmount != 2000 {
		t.Errorf("stats = %+v", stats)
	}
}
