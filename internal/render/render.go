// Package render produces the user-facing and debug views of a
// verification result and validates result completeness.
package render

import (
	"fmt"
	"strings"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/artifact"
	"github.com/medassure/bill-verifier/internal/entity"
)

// Final renders the user-facing text view. Artifacts are excluded;
// categories and items keep input order.
func Final(res *entity.VerificationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hospital: %s", res.HospitalName)
	if res.HospitalMatched {
		fmt.Fprintf(&b, " (matched %q, similarity %.2f)\n", res.MatchedHospital, res.HospitalSimilarity)
	} else {
		fmt.Fprintf(&b, " (no tie-up match, best similarity %.2f)\n", res.HospitalSimilarity)
	}

	for _, cat := range res.Categories {
		visible := visibleItems(cat.Items)
		if len(visible) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", cat.CategoryName)
		for _, item := range visible {
			writeItemLine(&b, item, false)
		}
	}

	b.WriteString("\nSummary: ")
	fmt.Fprintf(&b, "%d green, %d red, %d unclassified, %d non-comparable, %d mismatch\n",
		res.Summary.Green, res.Summary.Red, res.Summary.Unclassified,
		res.Summary.AllowedNotComparable, res.Summary.Mismatch)
	fmt.Fprintf(&b, "Billed ₹%.2f | Allowed ₹%.2f | Extra ₹%.2f | Unclassified ₹%.2f\n",
		res.Totals.Bill, res.Totals.Allowed, res.Totals.Extra, res.Totals.Unclassified)
	if !res.FinancialsBalanced {
		b.WriteString("WARNING: financial totals do not reconcile\n")
	}
	return b.String()
}

// Debug renders everything: artifacts, candidate lists, scores.
func Debug(res *entity.VerificationResult) string {
	var b strings.Builder
	b.WriteString(Final(res))
	b.WriteString("\n--- debug ---\n")
	for _, cat := range res.Categories {
		fmt.Fprintf(&b, "[%s] matched=%q sim=%.3f union=%t\n",
			cat.CategoryName, cat.MatchedCategory, cat.CategorySimilarity, cat.UnionSearch)
		for _, item := range cat.Items {
			writeItemLine(&b, item, true)
			for _, c := range item.Candidates {
				fmt.Fprintf(&b, "      cand %q sem=%.3f tok=%.3f con=%.3f hyb=%.3f\n",
					c.ItemName, c.Semantic, c.TokenOverlap, c.Containment, c.Hybrid)
			}
		}
	}
	for _, d := range res.Diagnostics {
		fmt.Fprintf(&b, "diagnostic: %s\n", d)
	}
	return b.String()
}

func visibleItems(items []entity.ItemResult) []entity.ItemResult {
	out := make([]entity.ItemResult, 0, len(items))
	for _, it := range items {
		if it.Status == constants.ItemStatusIgnoredArtifact {
			continue
		}
		out = append(out, it)
	}
	return out
}

func writeItemLine(b *strings.Builder, item entity.ItemResult, debug bool) {
	switch item.Status {
	case constants.ItemStatusGreen:
		fmt.Fprintf(b, "  [GREEN] %s  bill ₹%.2f  allowed ₹%.2f\n",
			item.ItemName, item.BillAmount, item.AllowedAmount)
	case constants.ItemStatusRed:
		fmt.Fprintf(b, "  [RED] %s  bill ₹%.2f  allowed ₹%.2f  extra ₹%.2f\n",
			item.ItemName, item.BillAmount, item.AllowedAmount, item.ExtraAmount)
	case constants.ItemStatusIgnoredArtifact:
		if debug {
			fmt.Fprintf(b, "  [ARTIFACT] %s\n", item.ItemName)
		}
	default:
		reason := ""
		if item.FailureReason != nil {
			reason = string(*item.FailureReason)
		}
		fmt.Fprintf(b, "  [%s] %s  bill ₹%.2f  allowed N/A  extra N/A  (%s)",
			item.Status, item.ItemName, item.BillAmount, reason)
		if item.BestCandidate != nil {
			fmt.Fprintf(b, "  best %q sim %.2f", item.BestCandidate.ItemName, item.BestCandidate.Semantic)
		}
		b.WriteByte('\n')
	}
}

// ValidateCompleteness checks that every non-artifact input item appears
// in the output exactly once, per category and in order.
func ValidateCompleteness(in entity.BillInput, res *entity.VerificationResult) error {
	if len(res.Categories) != len(in.Categories) {
		return fmt.Errorf("COMPLETENESS_VIOLATION: %d input categories, %d output", len(in.Categories), len(res.Categories))
	}
	for i, inCat := range in.Categories {
		outCat := res.Categories[i]
		if outCat.CategoryName != inCat.CategoryName {
			return fmt.Errorf("COMPLETENESS_VIOLATION: category %d renamed %q -> %q",
				i, inCat.CategoryName, outCat.CategoryName)
		}
		var want []string
		for _, it := range inCat.Items {
			if artifact.Detect(inCat.CategoryName, it.ItemName, it.Amount, it.Amount) {
				continue
			}
			want = append(want, it.ItemName)
		}
		var got []string
		for _, it := range outCat.Items {
			if it.Status == constants.ItemStatusIgnoredArtifact {
				continue
			}
			got = append(got, it.ItemName)
		}
		if len(want) != len(got) {
			return fmt.Errorf("COMPLETENESS_VIOLATION: category %q has %d input items, %d output",
				inCat.CategoryName, len(want), len(got))
		}
		for j := range want {
			if want[j] != got[j] {
				return fmt.Errorf("COMPLETENESS_VIOLATION: category %q item %d: %q != %q",
					inCat.CategoryName, j, want[j], got[j])
			}
		}
	}
	return nil
}

// ValidateCounters checks that the summary counters cover every output
// item exactly once.
func ValidateCounters(res *entity.VerificationResult) error {
	items := 0
	for _, cat := range res.Categories {
		items += len(cat.Items)
	}
	if res.Summary.Total() != items {
		return fmt.Errorf("COUNTER_VIOLATION: counters sum to %d, items total %d",
			res.Summary.Total(), items)
	}
	return nil
}
