package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medassure/bill-verifier/internal/common"
)

// scriptedBackend returns canned replies per model, in call order.
type scriptedBackend struct {
	replies map[string][]string
	errs    map[string]error
	calls   []string
}

func (s *scriptedBackend) Generate(_ context.Context, model, _ string, _ GenerateOptions) (string, error) {
	s.calls = append(s.calls, model)
	if err, ok := s.errs[model]; ok && err != nil {
		return "", err
	}
	q := s.replies[model]
	if len(q) == 0 {
		return "", errors.New("no scripted reply")
	}
	reply := q[0]
	s.replies[model] = q[1:]
	return reply, nil
}

func testCfg() common.LLMConfig {
	return common.LLMConfig{
		PrimaryModel:   "primary",
		SecondaryModel: "secondary",
		MinConfidence:  0.7,
		Timeout:        time.Second,
	}
}

func TestDecideAcceptsPrimaryVerdict(t *testing.T) {
	b := &scriptedBackend{replies: map[string][]string{
		"primary": {`{"match": true, "confidence": 0.92, "normalized_name": "mri brain"}`},
	}}
	a := NewArbiter(b, testCfg(), nil)

	v := a.Decide(context.Background(), "mri brain", "mri brain scan")
	if !v.Match || v.Confidence != 0.92 || v.Model != "primary" {
		t.Errorf("unexpected verdict: %+v", v)
	}
	if len(b.calls) != 1 {
		t.Errorf("expected 1 backend call, got %d", len(b.calls))
	}
}

func TestDecideFallsBackOnMalformedJSON(t *testing.T) {
	b := &scriptedBackend{replies: map[string][]string{
		"primary":   {`definitely a match, trust me`},
		"secondary": {`{"match": false, "confidence": 0.8}`},
	}}
	a := NewArbiter(b, testCfg(), nil)

	v := a.Decide(context.Background(), "x", "y")
	if v.Match || v.Model != "secondary" {
		t.Errorf("expected secondary verdict, got %+v", v)
	}
	if len(b.calls) != 2 {
		t.Errorf("expected exactly one fallback call, got %v", b.calls)
	}
}

func TestDecideFallsBackOnLowConfidence(t *testing.T) {
	b := &scriptedBackend{replies: map[string][]string{
		"primary":   {`{"match": true, "confidence": 0.4}`},
		"secondary": {`{"match": true, "confidence": 0.85}`},
	}}
	a := NewArbiter(b, testCfg(), nil)

	v := a.Decide(context.Background(), "x", "y")
	if !v.Match || v.Model != "secondary" {
		t.Errorf("expected confident secondary verdict, got %+v", v)
	}
}

func TestDecideTotalFailureReturnsNonMatch(t *testing.T) {
	b := &scriptedBackend{errs: map[string]error{
		"primary":   errors.New("connection refused"),
		"secondary": errors.New("connection refused"),
	}}
	a := NewArbiter(b, testCfg(), nil)

	v := a.Decide(context.Background(), "x", "y")
	if v.Match || v.Confidence != 0 || v.Error == "" {
		t.Errorf("expected failure verdict, got %+v", v)
	}
}

func TestDecideMemoizes(t *testing.T) {
	b := &scriptedBackend{replies: map[string][]string{
		"primary": {`{"match": true, "confidence": 0.9}`},
	}}
	a := NewArbiter(b, testCfg(), nil)

	first := a.Decide(context.Background(), "a", "b")
	second := a.Decide(context.Background(), "a", "b")
	if len(b.calls) != 1 {
		t.Errorf("expected memoized second call, backend saw %d calls", len(b.calls))
	}
	if first != second {
		t.Errorf("memoized verdict differs: %+v vs %+v", first, second)
	}
	if a.CacheSize() != 1 {
		t.Errorf("cache size = %d, want 1", a.CacheSize())
	}
}

func TestExtractJSONObjectToleratesProse(t *testing.T) {
	in := "Sure! Here is the answer:\n```json\n{\"match\": true, \"confidence\": 0.9}\n```"
	got := extractJSONObject(in)
	if got != `{"match": true, "confidence": 0.9}` {
		t.Errorf("extracted %q", got)
	}
}
