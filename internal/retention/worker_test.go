package retention

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/repository"
)

func openRepo(t *testing.T) repository.UploadRepository {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "bills.db") + "?_pragma=foreign_keys(1)"
	client, err := repository.OpenSQLite(dsn, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatal(err)
	}
	return repository.NewUploadRepository(client, nil)
}

func create(t *testing.T, repo repository.UploadRepository, reqID string) string {
	t.Helper()
	res, err := repo.CreateUploadRecord(context.Background(), repository.CreateUploadParams{
		IngestionRequestID: reqID,
		EmployeeID:         "12345678",
		HospitalName:       "Apollo Hospital",
		OriginalFilename:   "bill.pdf",
		FileSizeBytes:      10,
	})
	if err != nil {
		t.Fatal(err)
	}
	return res.Record.UploadID
}

func TestSweepPurgesOnlyExpired(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	expired := create(t, repo, "req-old")
	fresh := create(t, repo, "req-new")
	active := create(t, repo, "req-active")
	if err := repo.SoftDelete(ctx, expired, ""); err != nil {
		t.Fatal(err)
	}
	if err := repo.SoftDelete(ctx, fresh, ""); err != nil {
		t.Fatal(err)
	}

	// retention_days = 0 purges anything already soft-deleted.
	w := NewWorker(repo, nil, common.RetentionConfig{RetentionDays: 0, CleanupInterval: time.Hour}, nil)
	time.Sleep(5 * time.Millisecond)
	stats, err := w.Sweep(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Eligible != 2 || stats.Deleted != 2 || stats.Failed != 0 {
		t.Fatalf("stats = %+v", stats)
	}

	if _, err := repo.GetByID(ctx, expired); err == nil {
		t.Error("expired record must be gone")
	}
	if _, err := repo.GetByID(ctx, active); err != nil {
		t.Error("active record must survive the sweep")
	}

	// Second sweep is a no-op.
	stats, err = w.Sweep(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Eligible != 0 {
		t.Errorf("second sweep must find nothing: %+v", stats)
	}
}

func TestSweepHonorsRetentionWindow(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	id := create(t, repo, "req-1")
	if err := repo.SoftDelete(ctx, id, ""); err != nil {
		t.Fatal(err)
	}

	w := NewWorker(repo, nil, common.RetentionConfig{RetentionDays: 30, CleanupInterval: time.Hour}, nil)
	stats, err := w.Sweep(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Eligible != 0 {
		t.Fatalf("record inside the retention window must stay: %+v", stats)
	}
	if _, err := repo.GetByID(ctx, id); err != nil {
		t.Error("record must still exist")
	}
}
