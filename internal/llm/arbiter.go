// Package llm holds the chat backend client and the match arbiter that
// settles borderline item matches.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/medassure/bill-verifier/internal/common"
)

// Verdict is the arbiter's decision for one (bill item, tie-up item) pair.
type Verdict struct {
	Match          bool    `json:"match"`
	Confidence     float64 `json:"confidence"`
	NormalizedName string  `json:"normalized_name,omitempty"`
	Model          string  `json:"model,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// verdictSchema constrains the model's JSON reply.
var verdictSchema = map[string]any{
	"type":     "object",
	"required": []string{"match", "confidence"},
	"properties": map[string]any{
		"match":           map[string]any{"type": "boolean"},
		"confidence":      map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"normalized_name": map[string]any{"type": "string"},
	},
	"additionalProperties": false,
}

// Arbiter asks the chat backend whether a bill item and a tie-up item name
// the same billable thing. Decisions are memoized for the process
// lifetime; a malformed or low-confidence reply falls back to the
// secondary model exactly once. The arbiter never returns an error to the
// verifier: total failure yields a non-match verdict carrying the reason.
type Arbiter struct {
	backend ChatBackend
	cfg     common.LLMConfig
	logger  *slog.Logger

	mu    sync.Mutex
	cache map[string]Verdict

	compiled *jsonschema.Schema
}

func NewArbiter(backend ChatBackend, cfg common.LLMConfig, logger *slog.Logger) *Arbiter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.7
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Arbiter{
		backend:  backend,
		cfg:      cfg,
		logger:   logger,
		cache:    map[string]Verdict{},
		compiled: mustCompile(verdictSchema),
	}
}

// Decide resolves whether billItem matches tieupItem. Both inputs are
// normalized forms; the pair is the memoization key.
func (a *Arbiter) Decide(ctx context.Context, billItem, tieupItem string) Verdict {
	key := billItem + "\x00" + tieupItem

	a.mu.Lock()
	if v, ok := a.cache[key]; ok {
		a.mu.Unlock()
		return v
	}
	a.mu.Unlock()

	// Bound the whole decision to two model timeouts.
	ctx, cancel := context.WithTimeout(ctx, 2*a.cfg.Timeout)
	defer cancel()

	v, err := a.ask(ctx, a.cfg.PrimaryModel, billItem, tieupItem)
	if err != nil {
		a.logger.Warn("arbiter.primary_failed",
			"model", a.cfg.PrimaryModel, "bill_item", billItem, "error", err)
		v, err = a.ask(ctx, a.cfg.SecondaryModel, billItem, tieupItem)
		if err != nil {
			a.logger.Error("arbiter.both_models_failed",
				"bill_item", billItem, "tieup_item", tieupItem, "error", err)
			v = Verdict{Match: false, Confidence: 0, Error: err.Error()}
		}
	}

	a.mu.Lock()
	a.cache[key] = v
	a.mu.Unlock()
	return v
}

// CacheSize reports memoized decisions (for diagnostics).
func (a *Arbiter) CacheSize() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.cache)
}

func (a *Arbiter) ask(ctx context.Context, model, billItem, tieupItem string) (Verdict, error) {
	if model == "" {
		return Verdict{}, fmt.Errorf("no model configured")
	}
	start := time.Now()
	reply, err := a.backend.Generate(ctx, model, buildMatchPrompt(billItem, tieupItem), GenerateOptions{
		Temperature: a.cfg.Temperature,
		MaxTokens:   a.cfg.MaxTokens,
		Timeout:     a.cfg.Timeout,
	})
	if err != nil {
		return Verdict{}, err
	}

	raw := []byte(extractJSONObject(reply))
	if err := a.validate(raw); err != nil {
		return Verdict{}, fmt.Errorf("model %s returned invalid verdict: %w", model, err)
	}
	var v Verdict
	if err := json.Unmarshal(raw, &v); err != nil {
		return Verdict{}, fmt.Errorf("unmarshal verdict: %w", err)
	}
	if v.Confidence < a.cfg.MinConfidence {
		return Verdict{}, fmt.Errorf("model %s confidence %.2f below %.2f",
			model, v.Confidence, a.cfg.MinConfidence)
	}
	v.Model = model
	a.logger.Debug("arbiter.verdict",
		"model", model,
		"bill_item", billItem,
		"tieup_item", tieupItem,
		"match", v.Match,
		"confidence", v.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return v, nil
}

func (a *Arbiter) validate(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("not json: %w", err)
	}
	if err := a.compiled.Validate(v); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

func buildMatchPrompt(billItem, tieupItem string) string {
	var b strings.Builder
	b.WriteString("You compare hospital bill line items against a rate sheet.\n")
	b.WriteString("Decide whether the two names refer to the same billable item or service.\n")
	b.WriteString("Ignore doctor names, codes, and formatting. Different drugs, strengths, or procedures are NOT a match.\n\n")
	b.WriteString("Bill item: " + billItem + "\n")
	b.WriteString("Rate sheet item: " + tieupItem + "\n\n")
	b.WriteString(`Reply with ONLY a JSON object: {"match": true|false, "confidence": 0.0-1.0, "normalized_name": "<canonical name>"}`)
	return b.String()
}

// extractJSONObject tolerates models that wrap the object in prose or
// code fences: it returns the first balanced {...} span.
func extractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return s
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s[start:]
}

func mustCompile(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("verdict.json", bytes.NewReader(b)); err != nil {
		panic(err)
	}
	s, err := compiler.Compile("verdict.json")
	if err != nil {
		panic(err)
	}
	return s
}
