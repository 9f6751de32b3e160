package entity

import "sort"

// BillDocument is the structured bill extracted from one PDF.
type BillDocument struct {
	Patient            PatientInfo          `json:"patient"`
	Header             BillHeader           `json:"header"`
	Items              map[string][]ItemRow `json:"items"`
	CategoryOrder      []string             `json:"category_order,omitempty"`
	Payments           []Payment            `json:"payments,omitempty"`
	GrandTotal         float64              `json:"grand_total"`
	PageCount          int                  `json:"page_count"`
	RawOCRText         string               `json:"raw_ocr_text,omitempty"`
	ExtractionWarnings []string             `json:"extraction_warnings,omitempty"`
}

// PatientInfo carries the patient block from the bill header.
type PatientInfo struct {
	Name string `json:"name,omitempty"`
	MRN  string `json:"mrn,omitempty"`
	Age  string `json:"age,omitempty"`
	Sex  string `json:"sex,omitempty"`
}

// BillHeader carries bill-level metadata read off the document.
type BillHeader struct {
	BillNumber  string `json:"bill_number,omitempty"`
	BillingDate string `json:"billing_date,omitempty"` // YYYY-MM-DD when parseable
	AdmitDate   string `json:"admit_date,omitempty"`
	Ward        string `json:"ward,omitempty"`
}

// ItemRow is one free-text bill line with its final billed amount in rupees.
type ItemRow struct {
	ItemName string   `json:"item_name"`
	Amount   float64  `json:"amount"`
	Quantity *float64 `json:"quantity,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
	Page     *int     `json:"page,omitempty"`
	Category string   `json:"category,omitempty"` // derived, not extracted
}

// Payment is a payment/settlement row. Payments never contribute to
// grand_total.
type Payment struct {
	Mode   string  `json:"mode,omitempty"`
	Ref    string  `json:"ref,omitempty"`
	Amount float64 `json:"amount"`
}

// CategoryItems is the verifier-facing input shape: ordered categories.
type CategoryItems struct {
	CategoryName string    `json:"category_name"`
	Items        []ItemRow `json:"items"`
}

// BillInput is what the verifier consumes.
type BillInput struct {
	HospitalName string          `json:"hospital_name"`
	Categories   []CategoryItems `json:"categories"`
}

// ToBillInput flattens the extracted document into verifier input.
// Categories named in categoryOrder (the extractor records first-seen
// order) come first, in that order; any remaining categories follow in
// lexical order, since Go map order is not stable.
func (b *BillDocument) ToBillInput(hospitalName string, categoryOrder []string) BillInput {
	in := BillInput{HospitalName: hospitalName}
	seen := map[string]bool{}
	appendCat := func(name string) {
		items, ok := b.Items[name]
		if !ok || seen[name] {
			return
		}
		seen[name] = true
		in.Categories = append(in.Categories, CategoryItems{CategoryName: name, Items: items})
	}
	for _, name := range categoryOrder {
		appendCat(name)
	}
	var rest []string
	for name := range b.Items {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		appendCat(name)
	}
	return in
}
