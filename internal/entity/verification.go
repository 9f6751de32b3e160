package entity

import "github.com/medassure/bill-verifier/constants"

// Candidate is one scored tie-up match for a bill line.
type Candidate struct {
	ItemName     string                  `json:"item_name"`
	Rate         float64                 `json:"rate"`
	Type         constants.TieUpItemType `json:"type"`
	Semantic     float64                 `json:"semantic"`
	TokenOverlap float64                 `json:"token_overlap"`
	Containment  float64                 `json:"containment"`
	Hybrid       float64                 `json:"hybrid"`
}

// ItemResult is the classification of one bill line.
type ItemResult struct {
	ItemName      string                   `json:"item_name"`
	Status        constants.ItemStatus     `json:"status"`
	BillAmount    float64                  `json:"bill_amount"`
	AllowedAmount float64                  `json:"allowed_amount"`
	ExtraAmount   float64                  `json:"extra_amount"`
	FailureReason *constants.FailureReason `json:"failure_reason,omitempty"`
	MatchedItem   *string                  `json:"matched_item,omitempty"`
	BestCandidate *Candidate               `json:"best_candidate,omitempty"`
	Candidates    []Candidate              `json:"candidates,omitempty"` // debug view only
	ArbiterUsed   bool                     `json:"arbiter_used,omitempty"`
}

// CategoryResult preserves input order and cardinality per category.
type CategoryResult struct {
	CategoryName        string       `json:"category_name"`
	MatchedCategory     string       `json:"matched_category,omitempty"`
	CategorySimilarity  float64      `json:"category_similarity"`
	UnionSearch         bool         `json:"union_search,omitempty"` // similarity below soft threshold
	SoftThresholdWarned bool         `json:"soft_threshold_warned,omitempty"`
	Items               []ItemResult `json:"items"`
}

// SummaryCounts tallies per-item statuses.
type SummaryCounts struct {
	Green                int `json:"green"`
	Red                  int `json:"red"`
	Unclassified         int `json:"unclassified"`
	AllowedNotComparable int `json:"allowed_not_comparable"`
	Mismatch             int `json:"mismatch"`
	IgnoredArtifact      int `json:"ignored_artifact"`
}

// Total is the item count covered by the counters.
func (s SummaryCounts) Total() int {
	return s.Green + s.Red + s.Unclassified + s.AllowedNotComparable + s.Mismatch + s.IgnoredArtifact
}

// FinancialTotals are the reconciliation sums in rupees.
type FinancialTotals struct {
	Bill         float64 `json:"bill"`
	Allowed      float64 `json:"allowed"`
	Extra        float64 `json:"extra"`
	Unclassified float64 `json:"unclassified"`
}

// VerificationResult is the bill-level verification outcome.
type VerificationResult struct {
	HospitalName       string           `json:"hospital_name"`
	MatchedHospital    string           `json:"matched_hospital,omitempty"`
	HospitalSimilarity float64          `json:"hospital_similarity"`
	HospitalMatched    bool             `json:"hospital_matched"`
	Categories         []CategoryResult `json:"categories"`
	Summary            SummaryCounts    `json:"summary"`
	Totals             FinancialTotals  `json:"totals"`
	FinancialsBalanced bool             `json:"financials_balanced"`
	Diagnostics        []string         `json:"diagnostics,omitempty"`
}
