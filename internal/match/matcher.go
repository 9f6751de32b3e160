// Package match scores a query text against a flat vector index with a
// hybrid of semantic similarity, token overlap, and containment. It is
// pure: no persistence, no logging; decision thresholds live with callers.
package match

import (
	"sort"
	"strings"

	"github.com/medassure/bill-verifier/constants"
)

// Weights for the hybrid score.
type Weights struct {
	Semantic     float64
	TokenOverlap float64
	Containment  float64
}

// DefaultWeights per the verification design.
var DefaultWeights = Weights{Semantic: 0.6, TokenOverlap: 0.3, Containment: 0.1}

// Result is one scored candidate, best form per ID.
type Result struct {
	ID           int
	Text         string
	Semantic     float64
	TokenOverlap float64
	Containment  float64
	Hybrid       float64
}

// Matcher scores queries against indices.
type Matcher struct {
	weights Weights
	topK    int
}

func NewMatcher(weights Weights, topK int) *Matcher {
	if topK <= 0 {
		topK = 3
	}
	zero := Weights{}
	if weights == zero {
		weights = DefaultWeights
	}
	return &Matcher{weights: weights, topK: topK}
}

// TopK returns up to K candidates sorted by hybrid score, descending.
// queryText is the normalized query; queryVec its embedding. When an ID is
// indexed under several forms, the form with the highest hybrid wins.
func (m *Matcher) TopK(queryText string, queryVec []float32, ix *Index) []Result {
	if ix == nil || len(ix.Entries()) == 0 {
		return nil
	}
	qTokens := ContentTokens(queryText)

	best := make(map[int]Result, ix.Len())
	for _, e := range ix.Entries() {
		sem := dot(queryVec, e.Vector)
		cTokens := ContentTokens(e.Text)
		overlap := jaccard(qTokens, cTokens)
		contain := containment(qTokens, cTokens)
		hybrid := m.weights.Semantic*sem +
			m.weights.TokenOverlap*overlap +
			m.weights.Containment*contain
		r := Result{
			ID:           e.ID,
			Text:         e.Text,
			Semantic:     sem,
			TokenOverlap: overlap,
			Containment:  contain,
			Hybrid:       hybrid,
		}
		if prev, ok := best[e.ID]; !ok || r.Hybrid > prev.Hybrid {
			best[e.ID] = r
		}
	}

	out := make([]Result, 0, len(best))
	for _, r := range best {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hybrid != out[j].Hybrid {
			return out[i].Hybrid > out[j].Hybrid
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > m.topK {
		out = out[:m.topK]
	}
	return out
}

// ContentTokens splits normalized text into its content-word set:
// stopwords and pure-number tokens removed, tokens shorter than 2 runes
// discarded.
func ContentTokens(normalized string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, tok := range strings.Fields(normalized) {
		if len([]rune(tok)) < 2 {
			continue
		}
		if _, stop := constants.Stopwords[tok]; stop {
			continue
		}
		if isNumber(tok) {
			continue
		}
		out[tok] = struct{}{}
	}
	return out
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// containment is |query ∩ candidate| / |candidate|; 0 when the candidate
// has no content tokens.
func containment(query, candidate map[string]struct{}) float64 {
	if len(candidate) == 0 {
		return 0
	}
	inter := 0
	for t := range candidate {
		if _, ok := query[t]; ok {
			inter++
		}
	}
	return float64(inter) / float64(len(candidate))
}

func isNumber(tok string) bool {
	seen := false
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			seen = true
		case r == '.':
		default:
			return false
		}
	}
	return seen
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
