// Package pricing compares billed amounts against tie-up rates and
// classifies each line.
package pricing

import (
	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/entity"
)

// AllowedAmount computes the tie-up ceiling for one bill line. Unit items
// multiply by quantity (default 1); service and bundle rates are flat.
func AllowedAmount(item entity.ItemRow, tieup entity.TieUpItem) float64 {
	switch tieup.Type {
	case constants.TieUpTypeUnit:
		qty := 1.0
		if item.Quantity != nil && *item.Quantity > 0 {
			qty = *item.Quantity
		}
		return tieup.Rate * qty
	default:
		return tieup.Rate
	}
}

// Classify produces the per-item result for a matched line.
func Classify(item entity.ItemRow, tieup entity.TieUpItem) entity.ItemResult {
	allowed := AllowedAmount(item, tieup)
	res := entity.ItemResult{
		ItemName:      item.ItemName,
		BillAmount:    item.Amount,
		AllowedAmount: allowed,
	}
	name := tieup.ItemName
	res.MatchedItem = &name
	if item.Amount <= allowed {
		res.Status = constants.ItemStatusGreen
	} else {
		res.Status = constants.ItemStatusRed
		res.ExtraAmount = item.Amount - allowed
	}
	return res
}

// Unmatched produces the per-item result for a line with no accepted
// tie-up match. Allowed and extra stay zero for every unmatched status.
func Unmatched(item entity.ItemRow, status constants.ItemStatus, reason constants.FailureReason) entity.ItemResult {
	res := entity.ItemResult{
		ItemName:   item.ItemName,
		Status:     status,
		BillAmount: item.Amount,
	}
	if status != constants.ItemStatusGreen && status != constants.ItemStatusRed {
		r := reason
		res.FailureReason = &r
	}
	return res
}
