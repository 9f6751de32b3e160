package verifier

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/catalog"
	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/entity"
	"github.com/medassure/bill-verifier/internal/llm"
)

const dim = 64

// fixedEmbedder returns prescribed vectors for known texts and a unique
// axis for anything else, so semantic similarities are exact by
// construction.
type fixedEmbedder struct {
	mu     sync.Mutex
	fixed  map[string][]float32
	auto   map[string][]float32
	nextAx int
}

func newFixedEmbedder(fixed map[string][]float32) *fixedEmbedder {
	return &fixedEmbedder{fixed: fixed, auto: map[string][]float32{}, nextAx: 32}
}

func (f *fixedEmbedder) ModelID() string { return "fixed" }

func (f *fixedEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := f.fixed[t]; ok {
			out[i] = v
			continue
		}
		v, ok := f.auto[t]
		if !ok {
			v = axis(f.nextAx)
			f.nextAx++
			f.auto[t] = v
		}
		out[i] = v
	}
	return out, nil
}

func axis(i int) []float32 {
	v := make([]float32, dim)
	v[i%dim] = 1
	return v
}

// blend builds a unit vector with the given exact dot product against
// axis(main), putting the remainder on axis(rest).
func blend(main int, sim float64, rest int) []float32 {
	v := make([]float32, dim)
	v[main] = float32(sim)
	v[rest] = float32(math.Sqrt(1 - sim*sim))
	return v
}

// scriptedArbiter returns one fixed verdict and records invocations.
type scriptedArbiter struct {
	verdict llm.Verdict
	calls   int
}

func (s *scriptedArbiter) Decide(context.Context, string, string) llm.Verdict {
	s.calls++
	return s.verdict
}

const testSheet = `{
  "hospital_name": "Apollo Hospital",
  "categories": [
    {
      "category_name": "Consultation",
      "items": [
        {"item_name": "Consultation", "rate": 1500, "type": "service"},
        {"item_name": "MRI Brain", "rate": 8500, "type": "service"},
        {"item_name": "General Procedure", "rate": 5000, "type": "service"},
        {"item_name": "Physio Session", "rate": 800, "type": "service"},
        {"item_name": "Maternity Package", "rate": 45000, "type": "bundle"}
      ]
    },
    {
      "category_name": "Pharmacy",
      "items": [
        {"item_name": "Nicorandil 5mg", "rate": 120, "type": "unit"}
      ]
    }
  ]
}`

// axis assignments for catalog texts
const (
	axHospital = 0
	axConsult  = 1
	axPharmacy = 2
	axMRI      = 3
	axGeneral  = 4
	axPhysio   = 5
	axPackage  = 6
	axNicor    = 7
)

func testVectors() map[string][]float32 {
	return map[string][]float32{
		"apollo hospital":   axis(axHospital),
		"consultation":      axis(axConsult),
		"pharmacy":          axis(axPharmacy),
		"mri brain":         axis(axMRI),
		"general procedure": axis(axGeneral),
		"physio session":    axis(axPhysio),
		"maternity package": axis(axPackage),
		"nicorandil 5mg":    axis(axNicor),

		// bill-side queries with controlled similarities
		"consultation first visit": blend(axConsult, 0.75, 20),
		"experimental treatment z": blend(axGeneral, 0.34375, 21),
		"physiotherapy":            blend(axPhysio, 0.75, 22),
		"maternity charges":        blend(axPackage, 0.625, 23),
		"cervical mri":             blend(axMRI, 0.85, 24),
		"halfway hospital":         blend(axHospital, 0.5, 25),
	}
}

func newTestVerifier(t *testing.T, arb MatchArbiter) (*Verifier, *catalog.Catalog, *fixedEmbedder) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "apollo_hospital.json"), []byte(testSheet), 0o644); err != nil {
		t.Fatal(err)
	}
	cache, err := catalog.NewEmbedCache(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	emb := newFixedEmbedder(testVectors())
	loader := catalog.Loader{Dir: dir, Embedder: emb, Cache: cache}
	cat, err := loader.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	cfg := common.LoadConfig().Verifier
	return New(cfg, emb, arb, nil), cat, emb
}

func verify(t *testing.T, v *Verifier, cat *catalog.Catalog, in entity.BillInput) *entity.VerificationResult {
	t.Helper()
	res, err := v.VerifyBill(context.Background(), in, cat)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func singleItem(t *testing.T, res *entity.VerificationResult) entity.ItemResult {
	t.Helper()
	if len(res.Categories) != 1 || len(res.Categories[0].Items) != 1 {
		t.Fatalf("expected a single item result, got %+v", res.Categories)
	}
	return res.Categories[0].Items[0]
}

func bill(category string, items ...entity.ItemRow) entity.BillInput {
	return entity.BillInput{
		HospitalName: "Apollo Hospital",
		Categories:   []entity.CategoryItems{{CategoryName: category, Items: items}},
	}
}

func TestScenarioS1GreenViaHybrid(t *testing.T) {
	arb := &scriptedArbiter{}
	v, cat, _ := newTestVerifier(t, arb)

	res := verify(t, v, cat, bill("Consultation",
		entity.ItemRow{ItemName: "1. CONSULTATION - FIRST VISIT | Dr. A. Kumar", Amount: 1500}))

	item := singleItem(t, res)
	if item.Status != constants.ItemStatusGreen {
		t.Fatalf("status = %v, want GREEN (%+v)", item.Status, item)
	}
	if item.AllowedAmount != 1500 || item.ExtraAmount != 0 {
		t.Errorf("allowed=%v extra=%v, want 1500/0", item.AllowedAmount, item.ExtraAmount)
	}
	if arb.calls != 0 {
		t.Error("hybrid acceptance must not consult the arbiter")
	}
	if !res.FinancialsBalanced {
		t.Error("financials must balance")
	}
}

func TestScenarioS2RedWithExtra(t *testing.T) {
	v, cat, _ := newTestVerifier(t, &scriptedArbiter{})

	res := verify(t, v, cat, bill("Consultation",
		entity.ItemRow{ItemName: "MRI BRAIN | Dr. X", Amount: 10770}))

	item := singleItem(t, res)
	if item.Status != constants.ItemStatusRed || item.AllowedAmount != 8500 || item.ExtraAmount != 2270 {
		t.Fatalf("want RED 8500/2270, got %+v", item)
	}
	if res.Totals.Extra != 2270 || res.Totals.Allowed != 8500 {
		t.Errorf("totals wrong: %+v", res.Totals)
	}
}

func TestScenarioS3AdminCharge(t *testing.T) {
	v, cat, _ := newTestVerifier(t, &scriptedArbiter{})

	res := verify(t, v, cat, bill("Consultation",
		entity.ItemRow{ItemName: "Registration Fee", Amount: 200}))

	item := singleItem(t, res)
	if item.Status != constants.ItemStatusAllowedNotComparable {
		t.Fatalf("status = %v, want ALLOWED_NOT_COMPARABLE", item.Status)
	}
	if item.FailureReason == nil || *item.FailureReason != constants.FailureAdminCharge {
		t.Errorf("reason = %v, want ADMIN_CHARGE", item.FailureReason)
	}
	if res.Totals.Unclassified != 200 {
		t.Errorf("unclassified total = %v, want 200", res.Totals.Unclassified)
	}
}

func TestScenarioS4NotInTieup(t *testing.T) {
	v, cat, _ := newTestVerifier(t, &scriptedArbiter{})

	res := verify(t, v, cat, bill("Consultation",
		entity.ItemRow{ItemName: "Experimental Treatment Z", Amount: 10000}))

	item := singleItem(t, res)
	if item.Status != constants.ItemStatusUnclassified {
		t.Fatalf("status = %v, want UNCLASSIFIED", item.Status)
	}
	if item.FailureReason == nil || *item.FailureReason != constants.FailureNotInTieup {
		t.Errorf("reason = %v, want NOT_IN_TIEUP", item.FailureReason)
	}
	if item.BestCandidate != nil {
		t.Errorf("best candidate must be nil below 0.50 semantic, got %+v", item.BestCandidate)
	}
}

func TestSemanticAutoAcceptSkipsArbiter(t *testing.T) {
	arb := &scriptedArbiter{}
	v, cat, _ := newTestVerifier(t, arb)

	res := verify(t, v, cat, bill("Consultation",
		entity.ItemRow{ItemName: "Cervical MRI", Amount: 8000}))

	item := singleItem(t, res)
	if item.Status != constants.ItemStatusGreen {
		t.Fatalf("status = %v, want GREEN via semantic auto-accept (%+v)", item.Status, item)
	}
	if arb.calls != 0 {
		t.Error("semantic >= auto-accept threshold must not call the arbiter")
	}
}

func TestLLMBandAcceptance(t *testing.T) {
	arb := &scriptedArbiter{verdict: llm.Verdict{Match: true, Confidence: 0.9}}
	v, cat, _ := newTestVerifier(t, arb)

	res := verify(t, v, cat, bill("Consultation",
		entity.ItemRow{ItemName: "Physiotherapy", Amount: 700}))

	item := singleItem(t, res)
	if arb.calls != 1 {
		t.Fatalf("arbiter calls = %d, want 1", arb.calls)
	}
	if item.Status != constants.ItemStatusGreen || !item.ArbiterUsed {
		t.Fatalf("want GREEN via arbiter, got %+v", item)
	}
}

func TestLLMBandRejection(t *testing.T) {
	arb := &scriptedArbiter{verdict: llm.Verdict{Match: false, Confidence: 0.9}}
	v, cat, _ := newTestVerifier(t, arb)

	res := verify(t, v, cat, bill("Consultation",
		entity.ItemRow{ItemName: "Physiotherapy", Amount: 700}))

	item := singleItem(t, res)
	if item.Status != constants.ItemStatusUnclassified {
		t.Fatalf("status = %v, want UNCLASSIFIED", item.Status)
	}
	if item.FailureReason == nil || *item.FailureReason != constants.FailureLowSimilarity {
		t.Errorf("reason = %v, want LOW_SIMILARITY", item.FailureReason)
	}
	if item.BestCandidate == nil {
		t.Error("best candidate should be recorded above 0.50 semantic")
	}
}

func TestPackageOnlyMismatch(t *testing.T) {
	v, cat, _ := newTestVerifier(t, &scriptedArbiter{})

	res := verify(t, v, cat, bill("Consultation",
		entity.ItemRow{ItemName: "Maternity Charges", Amount: 50000}))

	item := singleItem(t, res)
	if item.Status != constants.ItemStatusMismatch {
		t.Fatalf("status = %v, want MISMATCH (%+v)", item.Status, item)
	}
	if item.FailureReason == nil || *item.FailureReason != constants.FailurePackageOnly {
		t.Errorf("reason = %v, want PACKAGE_ONLY", item.FailureReason)
	}
	if res.Totals.Unclassified != 50000 {
		t.Errorf("mismatch amounts count as unclassified: %+v", res.Totals)
	}
}

func TestUnitPricingMultipliesQuantity(t *testing.T) {
	v, cat, _ := newTestVerifier(t, &scriptedArbiter{})

	qty := 3.0
	res := verify(t, v, cat, bill("Pharmacy",
		entity.ItemRow{ItemName: "Nicorandil 5mg", Amount: 400, Quantity: &qty}))

	item := singleItem(t, res)
	if item.Status != constants.ItemStatusRed || item.AllowedAmount != 360 || item.ExtraAmount != 40 {
		t.Fatalf("want RED 360/40, got %+v", item)
	}
}

func TestArtifactIgnored(t *testing.T) {
	v, cat, _ := newTestVerifier(t, &scriptedArbiter{})

	res := verify(t, v, cat, bill("Hospital",
		entity.ItemRow{ItemName: "UNKNOWN", Amount: 0}))

	item := singleItem(t, res)
	if item.Status != constants.ItemStatusIgnoredArtifact {
		t.Fatalf("status = %v, want IGNORED_ARTIFACT", item.Status)
	}
	if res.Summary.IgnoredArtifact != 1 || res.Totals.Bill != 0 {
		t.Errorf("artifact must not contribute to totals: %+v %+v", res.Summary, res.Totals)
	}
}

func TestHospitalNotMatched(t *testing.T) {
	v, cat, _ := newTestVerifier(t, &scriptedArbiter{})

	in := entity.BillInput{
		HospitalName: "Unknown Clinic",
		Categories: []entity.CategoryItems{{
			CategoryName: "Consultation",
			Items: []entity.ItemRow{
				{ItemName: "Consultation", Amount: 1500},
				{ItemName: "MRI Brain", Amount: 9000},
			},
		}},
	}
	res := verify(t, v, cat, in)
	if res.HospitalMatched {
		t.Fatal("unknown hospital must not match")
	}
	for _, item := range res.Categories[0].Items {
		if item.Status != constants.ItemStatusUnclassified {
			t.Errorf("status = %v, want UNCLASSIFIED", item.Status)
		}
		if item.FailureReason == nil || *item.FailureReason != constants.FailureHospitalNotMatched {
			t.Errorf("reason = %v, want HOSPITAL_NOT_MATCHED", item.FailureReason)
		}
	}
	if res.Totals.Unclassified != 10500 || !res.FinancialsBalanced {
		t.Errorf("totals wrong: %+v", res.Totals)
	}
}

func TestHospitalSimilarityExactlyAtThreshold(t *testing.T) {
	v, cat, _ := newTestVerifier(t, &scriptedArbiter{})

	in := entity.BillInput{
		HospitalName: "Halfway Hospital",
		Categories: []entity.CategoryItems{{
			CategoryName: "Consultation",
			Items:        []entity.ItemRow{{ItemName: "Consultation", Amount: 100}},
		}},
	}
	res := verify(t, v, cat, in)
	if res.HospitalMatched {
		t.Fatal("similarity exactly at the threshold must not match")
	}
	item := res.Categories[0].Items[0]
	if item.FailureReason == nil || *item.FailureReason != constants.FailureHospitalNotMatched {
		t.Errorf("reason = %v, want HOSPITAL_NOT_MATCHED", item.FailureReason)
	}
}

func TestLowCategorySimilarityWidensToUnion(t *testing.T) {
	v, cat, _ := newTestVerifier(t, &scriptedArbiter{})

	// "Miscellaneous" is unknown to the catalog: category match is ~0, so
	// item search must widen to the hospital union and still find the MRI.
	res := verify(t, v, cat, bill("Miscellaneous",
		entity.ItemRow{ItemName: "MRI Brain", Amount: 8000}))

	if !res.Categories[0].UnionSearch {
		t.Fatal("low category similarity must switch to union search")
	}
	item := singleItem(t, res)
	if item.Status != constants.ItemStatusGreen || item.AllowedAmount != 8500 {
		t.Fatalf("union search should still match the item: %+v", item)
	}
}

func TestCompletenessAndCounters(t *testing.T) {
	v, cat, _ := newTestVerifier(t, &scriptedArbiter{})

	in := entity.BillInput{
		HospitalName: "Apollo Hospital",
		Categories: []entity.CategoryItems{
			{CategoryName: "Consultation", Items: []entity.ItemRow{
				{ItemName: "Consultation", Amount: 1500},
				{ItemName: "Consultation", Amount: 1500}, // duplicates stay independent
				{ItemName: "Registration Fee", Amount: 200},
			}},
			{CategoryName: "Pharmacy", Items: []entity.ItemRow{
				{ItemName: "Nicorandil 5mg", Amount: 120},
			}},
		},
	}
	res := verify(t, v, cat, in)

	if len(res.Categories) != 2 {
		t.Fatalf("categories must preserve input order and cardinality")
	}
	if got := len(res.Categories[0].Items); got != 3 {
		t.Errorf("category 0 items = %d, want 3", got)
	}
	if res.Summary.Total() != 4 {
		t.Errorf("counter total = %d, want 4", res.Summary.Total())
	}
	if res.Summary.Green != 3 || res.Summary.AllowedNotComparable != 1 {
		t.Errorf("summary wrong: %+v", res.Summary)
	}
	want := res.Totals.Allowed + res.Totals.Extra + res.Totals.Unclassified
	if math.Abs(res.Totals.Bill-want) > 0.01 || !res.FinancialsBalanced {
		t.Errorf("reconciliation failed: %+v", res.Totals)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Diagnostics)
	}
}
