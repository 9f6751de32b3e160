package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// fakeEmbedder derives a deterministic unit vector from the text hash.
type fakeEmbedder struct {
	mu    sync.Mutex
	calls int
	seen  []string
}

func (f *fakeEmbedder) ModelID() string { return "fake-model" }

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	f.calls++
	f.seen = append(f.seen, texts...)
	f.mu.Unlock()

	out := make([][]float32, len(texts))
	for i, t := range texts {
		h := sha256.Sum256([]byte(t))
		v := make([]float32, 8)
		var sum float64
		for j := range v {
			v[j] = float32(binary.BigEndian.Uint16(h[j*2:])%1000) / 1000.0
			sum += float64(v[j]) * float64(v[j])
		}
		inv := 1.0 / math.Sqrt(sum)
		for j := range v {
			v[j] = float32(float64(v[j]) * inv)
		}
		out[i] = v
	}
	return out, nil
}

const apolloSheet = `{
  "hospital_name": "Apollo Hospital",
  "categories": [
    {
      "category_name": "Consultation",
      "items": [
        {"item_name": "Consultation", "rate": 1500, "type": "service"},
        {"item_name": "MRI Brain", "rate": 8500, "type": "service"}
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

func writeSheet(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newLoader(t *testing.T, dir string) (*Loader, *fakeEmbedder) {
	t.Helper()
	cache, err := NewEmbedCache(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	emb := &fakeEmbedder{}
	return &Loader{Dir: dir, Embedder: emb, Cache: cache}, emb
}

func TestLoadBuildsIndices(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "apollo_hospital.json", apolloSheet)

	loader, _ := newLoader(t, dir)
	cat, err := loader.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(cat.Hospitals) != 1 {
		t.Fatalf("expected 1 hospital, got %d", len(cat.Hospitals))
	}
	h := cat.Hospitals[0]
	if h.Slug != "apollo_hospital" {
		t.Errorf("slug = %q", h.Slug)
	}
	if h.CategoryIndex.Len() != 2 {
		t.Errorf("category index size = %d, want 2", h.CategoryIndex.Len())
	}
	if len(h.ItemIndexes) != 2 || h.ItemIndexes[0].Len() != 2 || h.ItemIndexes[1].Len() != 1 {
		t.Errorf("unexpected item index shapes")
	}
	if h.UnionIndex.Len() != 3 || len(h.UnionRefs) != 3 {
		t.Errorf("union index size = %d, refs = %d, want 3", h.UnionIndex.Len(), len(h.UnionRefs))
	}
	if cat.HospitalIndex.Len() != 1 {
		t.Errorf("hospital index size = %d", cat.HospitalIndex.Len())
	}

	got := h.Item(h.UnionRefs[2])
	if got.ItemName != "Nicorandil 5mg" {
		t.Errorf("union ref resolution broken: %v", got)
	}
}

func TestGetIsCaseAndWhitespaceInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "apollo_hospital.json", apolloSheet)
	loader, _ := newLoader(t, dir)
	cat, err := loader.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cat.Get("  APOLLO   hospital "); err != nil {
		t.Errorf("lookup should ignore case and spacing: %v", err)
	}
	if _, err := cat.Get("Fortis"); err == nil {
		t.Error("unknown hospital must fail")
	}
}

func TestLoadFailsOnInvalidSheet(t *testing.T) {
	cases := map[string]string{
		"not_json.json":    `{not json`,
		"missing_req.json": `{"hospital_name": "X"}`,
		"bad_type.json":    `{"hospital_name":"X","categories":[{"category_name":"C","items":[{"item_name":"I","rate":10,"type":"hourly"}]}]}`,
		"neg_rate.json":    `{"hospital_name":"X","categories":[{"category_name":"C","items":[{"item_name":"I","rate":-5,"type":"unit"}]}]}`,
	}
	for name, content := range cases {
		dir := t.TempDir()
		writeSheet(t, dir, name, content)
		loader, _ := newLoader(t, dir)
		if _, err := loader.Load(context.Background()); err == nil {
			t.Errorf("%s: expected load failure", name)
		}
	}
}

func TestLoadFailsOnDuplicateHospital(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "a.json", apolloSheet)
	writeSheet(t, dir, "b.json", `{"hospital_name": "apollo  HOSPITAL", "categories": []}`)
	loader, _ := newLoader(t, dir)
	if _, err := loader.Load(context.Background()); err == nil {
		t.Error("duplicate normalized hospital name must fail the load")
	}
}

func TestCacheAvoidsReembedding(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "apollo_hospital.json", apolloSheet)

	cacheDir := t.TempDir()
	cache, err := NewEmbedCache(cacheDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	emb := &fakeEmbedder{}
	loader := &Loader{Dir: dir, Embedder: emb, Cache: cache}
	if _, err := loader.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	firstSeen := len(emb.seen)
	if firstSeen == 0 {
		t.Fatal("expected embedder calls on cold cache")
	}

	// Second load through the same disk cache must not re-embed anything.
	cache2, err := NewEmbedCache(cacheDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	emb2 := &fakeEmbedder{}
	loader2 := &Loader{Dir: dir, Embedder: emb2, Cache: cache2}
	if _, err := loader2.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(emb2.seen) != 0 {
		t.Errorf("warm cache re-embedded %d texts", len(emb2.seen))
	}
}

func TestStoreAtomicReload(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "apollo_hospital.json", apolloSheet)
	loader, _ := newLoader(t, dir)
	store := NewStore(*loader)

	if store.Snapshot() != nil {
		t.Fatal("snapshot must be nil before first load")
	}
	if err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	first := store.Snapshot()
	if first == nil {
		t.Fatal("snapshot missing after load")
	}

	// A failing reload must leave the old snapshot intact.
	writeSheet(t, dir, "broken.json", `{broken`)
	if err := store.Reload(context.Background()); err == nil {
		t.Fatal("expected reload failure")
	}
	if store.Snapshot() != first {
		t.Error("failed reload must not swap the snapshot")
	}

	// A successful reload swaps to a complete new catalog.
	if err := os.Remove(filepath.Join(dir, "broken.json")); err != nil {
		t.Fatal(err)
	}
	if err := store.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	if store.Snapshot() == first {
		t.Error("successful reload must swap the snapshot")
	}
}
