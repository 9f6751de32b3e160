package match

import (
	"math"
	"testing"
)

func vec(xs ...float32) []float32 {
	var sum float64
	for _, x := range xs {
		sum += float64(x) * float64(x)
	}
	inv := 1.0 / math.Sqrt(sum)
	out := make([]float32, len(xs))
	for i, x := range xs {
		out[i] = float32(float64(x) * inv)
	}
	return out
}

func TestContentTokens(t *testing.T) {
	toks := ContentTokens("mri of the brain 2 120")
	want := map[string]bool{"mri": true, "brain": true}
	if len(toks) != len(want) {
		t.Fatalf("tokens = %v, want mri+brain only", toks)
	}
	for k := range want {
		if _, ok := toks[k]; !ok {
			t.Errorf("missing token %q", k)
		}
	}
}

func TestTopKOrderingAndWeights(t *testing.T) {
	ix := NewIndex("items")
	ix.Add(0, "mri brain", vec(1, 0, 0))
	ix.Add(1, "ct scan chest", vec(0, 1, 0))
	ix.Add(2, "mri spine", vec(0.9, 0.1, 0))

	m := NewMatcher(DefaultWeights, 3)
	res := m.TopK("mri brain", vec(1, 0, 0), ix)
	if len(res) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res))
	}
	if res[0].ID != 0 {
		t.Fatalf("best match should be mri brain, got %v", res[0])
	}
	// exact: semantic 1.0, jaccard 1.0, containment 1.0 -> hybrid 1.0
	if math.Abs(res[0].Hybrid-1.0) > 1e-9 {
		t.Errorf("exact match hybrid = %v, want 1.0", res[0].Hybrid)
	}
	if res[1].ID != 2 {
		t.Errorf("second match should be mri spine, got %v", res[1])
	}
	if res[2].Hybrid >= res[1].Hybrid {
		t.Error("results must be sorted descending by hybrid")
	}
}

func TestTopKRespectsK(t *testing.T) {
	ix := NewIndex("items")
	for i := 0; i < 10; i++ {
		ix.Add(i, "item", vec(1, float32(i)))
	}
	m := NewMatcher(DefaultWeights, 3)
	if got := len(m.TopK("item", vec(1, 0), ix)); got != 3 {
		t.Errorf("expected 3 results, got %d", got)
	}
}

func TestMultiFormKeepsBestPerID(t *testing.T) {
	ix := NewIndex("items")
	// same ID indexed under full form and medical core
	ix.Add(0, "tab nicorandil 5mg", vec(1, 1, 0))
	ix.Add(0, "nicorandil 5mg", vec(1, 0, 0))

	m := NewMatcher(DefaultWeights, 3)
	res := m.TopK("nicorandil 5mg", vec(1, 0, 0), ix)
	if len(res) != 1 {
		t.Fatalf("expected a single deduped result, got %d", len(res))
	}
	if res[0].Text != "nicorandil 5mg" {
		t.Errorf("best form should win, got %q", res[0].Text)
	}
}

func TestContainmentAsymmetry(t *testing.T) {
	ix := NewIndex("items")
	ix.Add(0, "consultation", vec(1, 0))

	m := NewMatcher(DefaultWeights, 1)
	res := m.TopK("consultation first visit", vec(1, 0), ix)
	if len(res) != 1 {
		t.Fatal("expected one result")
	}
	if res[0].Containment != 1.0 {
		t.Errorf("containment = %v, want 1.0 (candidate fully covered)", res[0].Containment)
	}
	if res[0].TokenOverlap >= 1.0 {
		t.Error("jaccard must be below 1.0 for partial overlap")
	}
}

func TestMergeUnionIndex(t *testing.T) {
	a := NewIndex("a")
	a.Add(0, "x ray", vec(1, 0))
	b := NewIndex("b")
	b.Add(0, "mri", vec(0, 1))

	union := Merge("union", []*Index{a, b}, func(part, id int) int {
		return part*100 + id
	})
	if union.Len() != 101 {
		t.Fatalf("union size = %d, want 101 (max remapped id + 1)", union.Len())
	}
	m := NewMatcher(DefaultWeights, 5)
	res := m.TopK("mri", vec(0, 1), union)
	if res[0].ID != 100 {
		t.Errorf("expected remapped id 100, got %d", res[0].ID)
	}
}
