package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/billextract"
	"github.com/medassure/bill-verifier/internal/catalog"
	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/extract"
	"github.com/medassure/bill-verifier/internal/llm"
	"github.com/medassure/bill-verifier/internal/repository"
	"github.com/medassure/bill-verifier/internal/verifier"
)

// hashEmbedder is deterministic: equal texts embed identically (cosine
// 1.0), so exact name matches always win the top slot.
type hashEmbedder struct{}

func (hashEmbedder) ModelID() string { return "hash" }

func (hashEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		h := sha256.Sum256([]byte(t))
		v := make([]float32, 16)
		var sum float64
		for j := range v {
			v[j] = float32(binary.BigEndian.Uint16(h[j*2:])) + 1
			sum += float64(v[j]) * float64(v[j])
		}
		inv := 1 / math.Sqrt(sum)
		for j := range v {
			v[j] *= float32(inv)
		}
		out[i] = v
	}
	return out, nil
}

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) ExtractPages(context.Context, string) ([]extract.Page, []string, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return []extract.Page{{Number: 1, Text: s.text}}, nil, nil
}

type noArbiter struct{}

func (noArbiter) Decide(context.Context, string, string) llm.Verdict { return llm.Verdict{} }

const tieupSheet = `{
  "hospital_name": "Apollo Hospital",
  "categories": [
    {
      "category_name": "Consultation",
      "items": [
        {"item_name": "Consultation", "rate": 1500, "type": "service"}
      ]
    }
  ]
}`

type harness struct {
	service *Service
	worker  *Worker
	repo    repository.UploadRepository
}

func newHarness(t *testing.T, ocrText string) *harness {
	t.Helper()
	ctx := context.Background()

	dsn := "file:" + filepath.Join(t.TempDir(), "bills.db") + "?_pragma=foreign_keys(1)"
	client, err := repository.OpenSQLite(dsn, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatal(err)
	}
	repo := repository.NewUploadRepository(client, nil)

	sheetDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(sheetDir, "apollo_hospital.json"), []byte(tieupSheet), 0o644); err != nil {
		t.Fatal(err)
	}
	cache, err := catalog.NewEmbedCache(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	store := catalog.NewStore(catalog.Loader{Dir: sheetDir, Embedder: hashEmbedder{}, Cache: cache})
	if err := store.Load(ctx); err != nil {
		t.Fatal(err)
	}

	cfg := common.PipelineConfig{
		UploadsDir:             t.TempDir(),
		LeaseTTL:               time.Minute,
		ReconcileInterval:      50 * time.Millisecond,
		StaleProcessingTimeout: time.Hour,
	}
	service := NewService(repo, store, cfg, nil)
	v := verifier.New(common.LoadConfig().Verifier, hashEmbedder{}, noArbiter{}, nil)
	worker := NewWorker(service, repo, stubExtractor{text: ocrText}, billextract.NewParser(nil), v, store, cfg, nil)
	return &harness{service: service, worker: worker, repo: repo}
}

func submitParams(reqID string) SubmitParams {
	return SubmitParams{
		Bytes:           []byte("%PDF-1.4 test"),
		Filename:        "bill.pdf",
		EmployeeID:      "12345678",
		HospitalName:    "Apollo Hospital",
		ClientRequestID: reqID,
	}
}

const okBillText = "Consultation:\nCONSULTATION 1500.00\nGrand Total 1500.00"

func TestSubmitUploadValidation(t *testing.T) {
	h := newHarness(t, okBillText)
	ctx := context.Background()

	cases := []SubmitParams{
		{Bytes: []byte("x"), Filename: "bill.txt", EmployeeID: "12345678", HospitalName: "Apollo Hospital"},
		{Bytes: nil, Filename: "bill.pdf", EmployeeID: "12345678", HospitalName: "Apollo Hospital"},
		{Bytes: []byte("x"), Filename: "bill.pdf", EmployeeID: "1234", HospitalName: "Apollo Hospital"},
		{Bytes: []byte("x"), Filename: "bill.pdf", EmployeeID: "abcdefgh", HospitalName: "Apollo Hospital"},
		{Bytes: []byte("x"), Filename: "bill.pdf", EmployeeID: "12345678", HospitalName: "  "},
		{Bytes: []byte("x"), Filename: "bill.pdf", EmployeeID: "12345678", HospitalName: "No Such Hospital"},
		{Bytes: []byte("x"), Filename: "bill.pdf", EmployeeID: "12345678", HospitalName: "Apollo Hospital", InvoiceDate: "31-12-2024"},
	}
	for i, p := range cases {
		if _, err := h.service.SubmitUpload(ctx, p); err == nil {
			t.Errorf("case %d: expected validation failure", i)
		}
	}
}

func TestSubmitUploadAcceptsAndEnqueues(t *testing.T) {
	h := newHarness(t, okBillText)
	ctx := context.Background()

	res, err := h.service.SubmitUpload(ctx, submitParams("req-1"))
	if err != nil {
		t.Fatal(err)
	}
	rec := res.Record
	if rec.Status != constants.UploadStatusPending || rec.QueuePosition != 1 {
		t.Errorf("record = %v pos %d, want PENDING pos 1", rec.Status, rec.QueuePosition)
	}
	if rec.FileSizeBytes != int64(len("%PDF-1.4 test")) {
		t.Errorf("file size = %d", rec.FileSizeBytes)
	}
	if _, err := os.Stat(h.service.StagedPDFPath(rec.UploadID)); err != nil {
		t.Errorf("staged pdf missing: %v", err)
	}

	select {
	case <-h.service.Wake():
	default:
		t.Error("submit must signal the worker wake event")
	}
}

func TestSubmitUploadIdempotentByRequestID(t *testing.T) {
	h := newHarness(t, okBillText)
	ctx := context.Background()

	first, err := h.service.SubmitUpload(ctx, submitParams("req-1"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := h.service.SubmitUpload(ctx, submitParams("req-1"))
	if err != nil {
		t.Fatal(err)
	}
	if !second.Existing {
		t.Error("duplicate submit must report existing")
	}
	if second.Record.UploadID != first.Record.UploadID {
		t.Error("duplicate submit must return the same upload id")
	}
	rows, _ := h.repo.List(ctx, repository.ListFilter{})
	if len(rows) != 1 {
		t.Errorf("exactly one record must exist, got %d", len(rows))
	}
	if rows[0].QueuePosition != 1 {
		t.Errorf("queue position assigned once, got %d", rows[0].QueuePosition)
	}
}

func TestSubmitUploadDerivedRequestIDIsDeterministic(t *testing.T) {
	h := newHarness(t, okBillText)
	ctx := context.Background()

	first, err := h.service.SubmitUpload(ctx, submitParams(""))
	if err != nil {
		t.Fatal(err)
	}
	second, err := h.service.SubmitUpload(ctx, submitParams(""))
	if err != nil {
		t.Fatal(err)
	}
	if second.Record.UploadID != first.Record.UploadID {
		t.Error("same bytes + employee + hospital must dedupe without a client request id")
	}
}

func TestWorkerProcessesJobEndToEnd(t *testing.T) {
	h := newHarness(t, okBillText)
	ctx := context.Background()

	res, err := h.service.SubmitUpload(ctx, submitParams("req-1"))
	if err != nil {
		t.Fatal(err)
	}
	id := res.Record.UploadID

	claimed, err := h.repo.ClaimNextPendingJob(ctx, time.Minute)
	if err != nil || claimed == nil {
		t.Fatalf("claim failed: %v", err)
	}
	h.worker.process(ctx, claimed)

	rec, err := h.repo.GetByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != constants.UploadStatusCompleted {
		t.Fatalf("status = %v (%v)", rec.Status, rec.ErrorMessage)
	}
	if rec.VerificationStatus != constants.VerificationStatusCompleted {
		t.Fatalf("verification status = %v (%v)", rec.VerificationStatus, rec.VerificationError)
	}
	if rec.Bill == nil || len(rec.Bill.Items["Consultation"]) != 1 {
		t.Fatalf("extracted bill missing: %+v", rec.Bill)
	}
	if rec.VerificationResultText == nil || !strings.Contains(*rec.VerificationResultText, "[GREEN]") {
		t.Errorf("rendered verification text missing")
	}
	if _, err := os.Stat(filepath.Dir(h.service.StagedPDFPath(id))); !os.IsNotExist(err) {
		t.Error("staging directory must be cleaned up after processing")
	}
}

func TestWorkerMarksFailedOnOCRError(t *testing.T) {
	h := newHarness(t, okBillText)
	ctx := context.Background()
	h.worker.extractor = stubExtractor{err: common.ErrOCRFailure}

	res, err := h.service.SubmitUpload(ctx, submitParams("req-1"))
	if err != nil {
		t.Fatal(err)
	}
	claimed, err := h.repo.ClaimNextPendingJob(ctx, time.Minute)
	if err != nil || claimed == nil {
		t.Fatal(err)
	}
	h.worker.process(ctx, claimed)

	rec, _ := h.repo.GetByID(ctx, res.Record.UploadID)
	if rec.Status != constants.UploadStatusFailed || rec.ErrorMessage == nil {
		t.Errorf("expected FAILED with message, got %+v", rec)
	}
	if _, err := os.Stat(filepath.Dir(h.service.StagedPDFPath(rec.UploadID))); !os.IsNotExist(err) {
		t.Error("cleanup must run on failure too")
	}
}
