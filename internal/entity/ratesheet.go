package entity

import "github.com/medassure/bill-verifier/constants"

// RateSheet is one hospital's pre-negotiated tie-up rates, loaded from JSON.
type RateSheet struct {
	HospitalName string          `json:"hospital_name"`
	Categories   []RateCategory  `json:"categories"`
}

// RateCategory groups tie-up items under a billing category.
type RateCategory struct {
	CategoryName string      `json:"category_name"`
	Items        []TieUpItem `json:"items"`
}

// TieUpItem is a canonical billable entry from a hospital's rate sheet.
type TieUpItem struct {
	ItemName string                  `json:"item_name"`
	Rate     float64                 `json:"rate"`
	Type     constants.TieUpItemType `json:"type"`
}
