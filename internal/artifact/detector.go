// Package artifact classifies OCR/header fragments that are not real
// billable rows. Artifacts are filtered before persistence and excluded
// from completeness validation; the verifier marks any stragglers as
// IGNORED_ARTIFACT instead of matching them.
package artifact

import (
	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/normalize"
)

// hospitalCategories are the header-category keys (compact form) that the
// legacy extractor leaked as pseudo-rows.
var hospitalCategories = map[string]struct{}{
	"hospital":        {},
	"hospitalization": {},
	"hospitalcharges": {},
}

// IsArtifact reports whether a (category, item, amount, finalAmount)
// quadruple is a non-billable header artifact. All four conditions must
// hold: hospital-family category, empty/UNKNOWN item name, both amounts
// zero.
func IsArtifact(categoryName, itemName string, amount, finalAmount float64) bool {
	if amount != 0 || finalAmount != 0 {
		return false
	}
	if _, ok := hospitalCategories[normalize.CompactKey(categoryName)]; !ok {
		return false
	}
	item := normalize.CompactKey(itemName)
	return item == "" || item == "unknown"
}

// IsZeroAmountNoise flags rows whose normalized form is a pure number, a
// long alphanumeric code, or a lot/batch/expiry remnant, with no amount
// attached. These are OCR debris, not billable rows.
func IsZeroAmountNoise(itemName string, amount float64) bool {
	if amount != 0 {
		return false
	}
	norm := normalize.Normalize(itemName)
	if norm == "" {
		return true
	}
	return normalize.IsPureNumber(norm) ||
		normalize.LooksLikeCode(norm) ||
		normalize.LooksLikeLotBatch(norm)
}

// Detect is the verifier-facing predicate combining both rules.
func Detect(categoryName string, item string, amount, finalAmount float64) bool {
	return IsArtifact(categoryName, item, amount, finalAmount) ||
		IsZeroAmountNoise(item, amount)
}

// IsAdminCharge reports whether a bill line names an administrative,
// non-comparable charge (registration fee, deposit, processing fee, ...).
func IsAdminCharge(itemName string) bool {
	return constants.IsAdminPhrase(normalize.Normalize(itemName))
}
