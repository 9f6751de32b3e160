package render

import (
	"strings"
	"testing"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/entity"
)

func reason(r constants.FailureReason) *constants.FailureReason { return &r }

func sampleResult() *entity.VerificationResult {
	return &entity.VerificationResult{
		HospitalName:       "Apollo Hospital",
		MatchedHospital:    "Apollo Hospital",
		HospitalSimilarity: 0.97,
		HospitalMatched:    true,
		Categories: []entity.CategoryResult{{
			CategoryName: "Consultation",
			Items: []entity.ItemResult{
				{ItemName: "Consultation", Status: constants.ItemStatusGreen, BillAmount: 1500, AllowedAmount: 1500},
				{ItemName: "MRI Brain", Status: constants.ItemStatusRed, BillAmount: 10770, AllowedAmount: 8500, ExtraAmount: 2270},
				{ItemName: "Registration Fee", Status: constants.ItemStatusAllowedNotComparable, BillAmount: 200,
					FailureReason: reason(constants.FailureAdminCharge)},
				{ItemName: "AB12CD34", Status: constants.ItemStatusIgnoredArtifact},
			},
		}},
		Summary: entity.SummaryCounts{Green: 1, Red: 1, AllowedNotComparable: 1, IgnoredArtifact: 1},
		Totals:  entity.FinancialTotals{Bill: 12470, Allowed: 10000, Extra: 2270, Unclassified: 200},
		FinancialsBalanced: true,
	}
}

func TestFinalViewRules(t *testing.T) {
	out := Final(sampleResult())
	if !strings.Contains(out, "[GREEN] Consultation") {
		t.Error("green line missing")
	}
	if !strings.Contains(out, "extra ₹2270.00") {
		t.Error("red line must carry the extra amount")
	}
	if !strings.Contains(out, "allowed N/A") || !strings.Contains(out, "ADMIN_CHARGE") {
		t.Error("non-comparable line must render N/A with its reason")
	}
	if strings.Contains(out, "AB12CD34") {
		t.Error("artifacts must not appear in the final view")
	}
}

func TestDebugViewShowsArtifactsAndCandidates(t *testing.T) {
	res := sampleResult()
	res.Categories[0].Items[0].Candidates = []entity.Candidate{
		{ItemName: "Consultation", Semantic: 0.99, Hybrid: 0.95},
	}
	out := Debug(res)
	if !strings.Contains(out, "[ARTIFACT] AB12CD34") {
		t.Error("debug view must show artifacts")
	}
	if !strings.Contains(out, `cand "Consultation"`) {
		t.Error("debug view must show candidate scores")
	}
}

func inputFor(res *entity.VerificationResult) entity.BillInput {
	in := entity.BillInput{HospitalName: res.HospitalName}
	for _, cat := range res.Categories {
		c := entity.CategoryItems{CategoryName: cat.CategoryName}
		for _, it := range cat.Items {
			row := entity.ItemRow{ItemName: it.ItemName, Amount: it.BillAmount}
			c.Items = append(c.Items, row)
		}
		in.Categories = append(in.Categories, c)
	}
	return in
}

func TestValidateCompletenessAccepts(t *testing.T) {
	res := sampleResult()
	in := inputFor(res)
	if err := ValidateCompleteness(in, res); err != nil {
		t.Errorf("unexpected violation: %v", err)
	}
}

func TestValidateCompletenessDetectsLoss(t *testing.T) {
	res := sampleResult()
	in := inputFor(res)
	res.Categories[0].Items = res.Categories[0].Items[:2] // drop one real item
	if err := ValidateCompleteness(in, res); err == nil {
		t.Error("dropped item must trip the completeness check")
	}
}

func TestValidateCounters(t *testing.T) {
	res := sampleResult()
	if err := ValidateCounters(res); err != nil {
		t.Errorf("counters should reconcile: %v", err)
	}
	res.Summary.Green = 5
	if err := ValidateCounters(res); err == nil {
		t.Error("inflated counter must trip the check")
	}
}
