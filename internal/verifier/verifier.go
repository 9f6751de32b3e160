// Package verifier orchestrates hospital, category, and item matching and
// assembles the bill-level verification result.
package verifier

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/artifact"
	"github.com/medassure/bill-verifier/internal/catalog"
	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/embedding"
	"github.com/medassure/bill-verifier/internal/entity"
	"github.com/medassure/bill-verifier/internal/llm"
	"github.com/medassure/bill-verifier/internal/match"
	"github.com/medassure/bill-verifier/internal/normalize"
	"github.com/medassure/bill-verifier/internal/pricing"
)

// MatchArbiter settles borderline item matches. Satisfied by *llm.Arbiter.
type MatchArbiter interface {
	Decide(ctx context.Context, billItem, tieupItem string) llm.Verdict
}

// Verifier is pure given a catalog snapshot: it holds no per-bill state
// and may be shared across goroutines.
type Verifier struct {
	cfg      common.VerifierConfig
	matcher  *match.Matcher
	embedder embedding.Embedder
	arbiter  MatchArbiter
	logger   *slog.Logger
}

func New(cfg common.VerifierConfig, embedder embedding.Embedder, arbiter MatchArbiter, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.Default()
	}
	weights := match.Weights{
		Semantic:     cfg.WeightSemantic,
		TokenOverlap: cfg.WeightTokenOverlap,
		Containment:  cfg.WeightContainment,
	}
	return &Verifier{
		cfg:      cfg,
		matcher:  match.NewMatcher(weights, cfg.TopK),
		embedder: embedder,
		arbiter:  arbiter,
		logger:   logger,
	}
}

// VerifyBill runs the four matching stages over one bill against a catalog
// snapshot. Every input item appears in the output exactly once.
func (v *Verifier) VerifyBill(ctx context.Context, in entity.BillInput, cat *catalog.Catalog) (*entity.VerificationResult, error) {
	start := time.Now()
	vecs, err := v.embedQueries(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("embed bill texts: %w", err)
	}

	res := &entity.VerificationResult{HospitalName: in.HospitalName}

	// Stage 1: hospital match on the asserted name.
	hospNorm := normalize.Normalize(in.HospitalName)
	hospTop := v.matcher.TopK(hospNorm, vecs[hospNorm], cat.HospitalIndex)
	var hospital *catalog.Hospital
	if len(hospTop) > 0 {
		res.HospitalSimilarity = hospTop[0].Semantic
		hospital = cat.Hospitals[hospTop[0].ID]
		res.MatchedHospital = hospital.Name
	}
	res.HospitalMatched = hospital != nil && res.HospitalSimilarity > v.cfg.HospitalThreshold
	if !res.HospitalMatched {
		v.logger.Warn("verify.hospital_not_matched",
			"hospital", in.HospitalName,
			"best", res.MatchedHospital,
			"similarity", res.HospitalSimilarity,
		)
		for _, c := range in.Categories {
			res.Categories = append(res.Categories, v.unmatchedHospitalCategory(c))
		}
		v.aggregate(in, res)
		return res, nil
	}

	// Stages 2+3 per input category.
	for _, c := range in.Categories {
		res.Categories = append(res.Categories, v.verifyCategory(ctx, hospital, c, vecs))
	}

	v.aggregate(in, res)
	v.logger.Info("verify.done",
		"hospital", hospital.Name,
		"categories", len(res.Categories),
		"items", res.Summary.Total(),
		"green", res.Summary.Green,
		"red", res.Summary.Red,
		"balanced", res.FinancialsBalanced,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// embedQueries embeds every distinct normalized text of the bill in one
// batched pass: hospital name, category names, item names.
func (v *Verifier) embedQueries(ctx context.Context, in entity.BillInput) (map[string][]float32, error) {
	seen := map[string]bool{}
	var texts []string
	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			texts = append(texts, t)
		}
	}
	add(normalize.Normalize(in.HospitalName))
	for _, c := range in.Categories {
		add(normalize.Normalize(c.CategoryName))
		for _, it := range c.Items {
			add(normalize.Normalize(it.ItemName))
		}
	}
	vecs, err := v.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vecs), len(texts))
	}
	out := make(map[string][]float32, len(texts))
	for i, t := range texts {
		out[t] = vecs[i]
	}
	return out, nil
}

func (v *Verifier) unmatchedHospitalCategory(c entity.CategoryItems) entity.CategoryResult {
	out := entity.CategoryResult{CategoryName: c.CategoryName}
	for _, it := range c.Items {
		if artifact.Detect(c.CategoryName, it.ItemName, it.Amount, it.Amount) {
			out.Items = append(out.Items, pricing.Unmatched(it, constants.ItemStatusIgnoredArtifact, ""))
			continue
		}
		out.Items = append(out.Items,
			pricing.Unmatched(it, constants.ItemStatusUnclassified, constants.FailureHospitalNotMatched))
	}
	return out
}

// verifyCategory resolves the search index for one input category and
// classifies each of its items.
func (v *Verifier) verifyCategory(ctx context.Context, h *catalog.Hospital, c entity.CategoryItems, vecs map[string][]float32) entity.CategoryResult {
	out := entity.CategoryResult{CategoryName: c.CategoryName}

	catNorm := normalize.Normalize(c.CategoryName)
	catTop := v.matcher.TopK(catNorm, vecs[catNorm], h.CategoryIndex)

	var itemIndex *match.Index
	var resolve func(id int) entity.TieUpItem
	if len(catTop) > 0 {
		best := catTop[0]
		out.MatchedCategory = h.Sheet.Categories[best.ID].CategoryName
		out.CategorySimilarity = best.Semantic

		switch {
		case best.Semantic >= v.cfg.CategoryHard:
			itemIndex = h.ItemIndexes[best.ID]
			ci := best.ID
			resolve = func(id int) entity.TieUpItem { return h.Sheet.Categories[ci].Items[id] }
		case best.Semantic >= v.cfg.CategorySoft:
			out.SoftThresholdWarned = true
			v.logger.Warn("verify.category_soft_threshold",
				"category", c.CategoryName,
				"matched", out.MatchedCategory,
				"similarity", best.Semantic,
			)
			itemIndex = h.ItemIndexes[best.ID]
			ci := best.ID
			resolve = func(id int) entity.TieUpItem { return h.Sheet.Categories[ci].Items[id] }
		default:
			// Best guess stays recorded for diagnostics; the item search
			// widens to the hospital-wide union.
			out.UnionSearch = true
			itemIndex = h.UnionIndex
			resolve = func(id int) entity.TieUpItem { return h.Item(h.UnionRefs[id]) }
		}
	} else {
		out.UnionSearch = true
		itemIndex = h.UnionIndex
		resolve = func(id int) entity.TieUpItem { return h.Item(h.UnionRefs[id]) }
	}

	for _, it := range c.Items {
		out.Items = append(out.Items, v.verifyItem(ctx, c.CategoryName, it, itemIndex, resolve, vecs))
	}
	return out
}

func (v *Verifier) verifyItem(ctx context.Context, categoryName string, it entity.ItemRow, ix *match.Index, resolve func(int) entity.TieUpItem, vecs map[string][]float32) entity.ItemResult {
	if artifact.Detect(categoryName, it.ItemName, it.Amount, it.Amount) {
		return pricing.Unmatched(it, constants.ItemStatusIgnoredArtifact, "")
	}

	norm := normalize.Normalize(it.ItemName)
	top := v.matcher.TopK(norm, vecs[norm], ix)
	if len(top) == 0 {
		return v.rejected(it, nil, nil)
	}

	best := top[0]
	tieup := resolve(best.ID)

	accepted := best.Semantic >= v.cfg.SemanticAutoAccept ||
		(best.Hybrid >= v.cfg.HybridAccept &&
			(best.TokenOverlap >= 0.5 || best.Containment >= 0.7))

	arbiterUsed := false
	if !accepted && best.Semantic >= v.cfg.LLMBandLow && best.Semantic < v.cfg.LLMBandHigh {
		arbiterUsed = true
		verdict := v.arbiter.Decide(ctx, norm, best.Text)
		accepted = verdict.Match && verdict.Confidence >= 0.7
	}

	if accepted {
		res := pricing.Classify(it, tieup)
		res.BestCandidate = candidateOf(best, tieup)
		res.Candidates = candidatesOf(top, resolve)
		res.ArbiterUsed = arbiterUsed
		return res
	}

	res := v.rejected(it, &best, &tieup)
	res.Candidates = candidatesOf(top, resolve)
	res.ArbiterUsed = arbiterUsed
	if best.Semantic >= 0.50 {
		res.BestCandidate = candidateOf(best, tieup)
	}
	return res
}

// rejected assigns status and failure reason for a non-accepted item.
// Admin charges trump everything; a bundle-only best candidate is a
// MISMATCH; the rest splits on how far the best semantic fell.
func (v *Verifier) rejected(it entity.ItemRow, best *match.Result, tieup *entity.TieUpItem) entity.ItemResult {
	if artifact.IsAdminCharge(it.ItemName) {
		return pricing.Unmatched(it, constants.ItemStatusAllowedNotComparable, constants.FailureAdminCharge)
	}
	if best == nil || best.Semantic < 0.50 {
		return pricing.Unmatched(it, constants.ItemStatusUnclassified, constants.FailureNotInTieup)
	}
	if tieup != nil && tieup.Type == constants.TieUpTypeBundle {
		return pricing.Unmatched(it, constants.ItemStatusMismatch, constants.FailurePackageOnly)
	}
	return pricing.Unmatched(it, constants.ItemStatusUnclassified, constants.FailureLowSimilarity)
}

func (v *Verifier) aggregate(in entity.BillInput, res *entity.VerificationResult) {
	for ci := range res.Categories {
		for ii := range res.Categories[ci].Items {
			item := &res.Categories[ci].Items[ii]
			switch item.Status {
			case constants.ItemStatusGreen:
				res.Summary.Green++
				// A GREEN line settles at what was billed (bill <= ceiling),
				// keeping bill == allowed + extra + unclassified exact.
				res.Totals.Allowed += item.BillAmount
			case constants.ItemStatusRed:
				res.Summary.Red++
				res.Totals.Allowed += item.AllowedAmount
				res.Totals.Extra += item.ExtraAmount
			case constants.ItemStatusUnclassified:
				res.Summary.Unclassified++
				res.Totals.Unclassified += item.BillAmount
			case constants.ItemStatusAllowedNotComparable:
				res.Summary.AllowedNotComparable++
				res.Totals.Unclassified += item.BillAmount
			case constants.ItemStatusMismatch:
				res.Summary.Mismatch++
				res.Totals.Unclassified += item.BillAmount
			case constants.ItemStatusIgnoredArtifact:
				res.Summary.IgnoredArtifact++
			}
			if item.Status != constants.ItemStatusIgnoredArtifact {
				res.Totals.Bill += item.BillAmount
			}
		}
	}

	diff := res.Totals.Bill - (res.Totals.Allowed + res.Totals.Extra + res.Totals.Unclassified)
	res.FinancialsBalanced = math.Abs(diff) <= v.cfg.FinancialToleranceRs
	if !res.FinancialsBalanced {
		msg := fmt.Sprintf("financials imbalanced: bill=%.2f allowed=%.2f extra=%.2f unclassified=%.2f",
			res.Totals.Bill, res.Totals.Allowed, res.Totals.Extra, res.Totals.Unclassified)
		res.Diagnostics = append(res.Diagnostics, msg)
		v.logger.Error("verify.reconciliation_imbalance", "detail", msg)
	}

	// Completeness: every non-artifact input item appears exactly once.
	inputCount := 0
	for _, c := range in.Categories {
		for _, it := range c.Items {
			if !artifact.Detect(c.CategoryName, it.ItemName, it.Amount, it.Amount) {
				inputCount++
			}
		}
	}
	outputCount := res.Summary.Total() - res.Summary.IgnoredArtifact
	if inputCount != outputCount {
		msg := fmt.Sprintf("completeness violation: input=%d output=%d", inputCount, outputCount)
		res.Diagnostics = append(res.Diagnostics, msg)
		v.logger.Error("verify.completeness_violation", "detail", msg)
	}
}

func candidateOf(r match.Result, tieup entity.TieUpItem) *entity.Candidate {
	return &entity.Candidate{
		ItemName:     tieup.ItemName,
		Rate:         tieup.Rate,
		Type:         tieup.Type,
		Semantic:     r.Semantic,
		TokenOverlap: r.TokenOverlap,
		Containment:  r.Containment,
		Hybrid:       r.Hybrid,
	}
}

func candidatesOf(top []match.Result, resolve func(int) entity.TieUpItem) []entity.Candidate {
	out := make([]entity.Candidate, 0, len(top))
	for _, r := range top {
		out = append(out, *candidateOf(r, resolve(r.ID)))
	}
	return out
}
