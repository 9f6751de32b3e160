package billextract

import (
	"strings"
	"testing"

	"github.com/medassure/bill-verifier/internal/extract"
)

func pageOf(lines ...string) extract.Page {
	return extract.Page{Number: 1, Text: strings.Join(lines, "\n")}
}

func TestParseCategorizedItems(t *testing.T) {
	p := NewParser(nil)
	doc := p.Parse([]extract.Page{pageOf(
		"Apollo Hospital",
		"Patient Name: R. Sharma",
		"MRN: 123456",
		"Bill No: INV-2024-001",
		"Bill Date: 12/01/2024",
		"Consultation:",
		"1. CONSULTATION - FIRST VISIT | Dr. A. Kumar 1500.00",
		"Pharmacy",
		"NICORANDIL 5mg TAB 2 x 60.00 120.00",
		"SYRINGE 10ml 2 25.00 50.00",
		"Grand Total 1670.00",
		"Paid by card 1670.00",
	)}, nil)

	if doc.Patient.Name != "R. Sharma" || doc.Patient.MRN != "123456" {
		t.Errorf("patient block wrong: %+v", doc.Patient)
	}
	if doc.Header.BillNumber != "INV-2024-001" || doc.Header.BillingDate != "2024-01-12" {
		t.Errorf("header block wrong: %+v", doc.Header)
	}
	if len(doc.CategoryOrder) != 2 || doc.CategoryOrder[0] != "Consultation" || doc.CategoryOrder[1] != "Pharmacy" {
		t.Fatalf("category order = %v", doc.CategoryOrder)
	}
	if len(doc.Items["Consultation"]) != 1 || len(doc.Items["Pharmacy"]) != 2 {
		t.Fatalf("items = %+v", doc.Items)
	}

	med := doc.Items["Pharmacy"][0]
	if med.ItemName != "NICORANDIL 5mg TAB" || med.Amount != 120 {
		t.Errorf("item = %+v", med)
	}
	if med.Quantity == nil || *med.Quantity != 2 || med.Rate == nil || *med.Rate != 60 {
		t.Errorf("qty/rate not parsed: %+v", med)
	}

	if doc.GrandTotal != 1670 {
		t.Errorf("grand total = %v", doc.GrandTotal)
	}
	if len(doc.Payments) != 1 || doc.Payments[0].Mode != "card" || doc.Payments[0].Amount != 1670 {
		t.Errorf("payments = %+v", doc.Payments)
	}
	if len(doc.ExtractionWarnings) != 0 {
		t.Errorf("unexpected warnings: %v", doc.ExtractionWarnings)
	}
}

func TestParseGrandTotalMismatchWarns(t *testing.T) {
	p := NewParser(nil)
	doc := p.Parse([]extract.Page{pageOf(
		"Consultation:",
		"CONSULTATION 1500.00",
		"Grand Total 9999.00",
	)}, nil)
	if doc.GrandTotal != 9999 {
		t.Errorf("stated total must win: %v", doc.GrandTotal)
	}
	if len(doc.ExtractionWarnings) != 1 {
		t.Errorf("expected a mismatch warning, got %v", doc.ExtractionWarnings)
	}
}

func TestParseFallsBackToItemSum(t *testing.T) {
	p := NewParser(nil)
	doc := p.Parse([]extract.Page{pageOf(
		"Consultation:",
		"CONSULTATION 1500.00",
		"DRESSING 230.50",
	)}, nil)
	if doc.GrandTotal != 1730.50 {
		t.Errorf("grand total = %v, want item sum", doc.GrandTotal)
	}
}

func TestParseEmptyPagesWarns(t *testing.T) {
	p := NewParser(nil)
	doc := p.Parse([]extract.Page{{Number: 1}}, []string{"page 1: ocr failed"})
	if len(doc.Items) != 0 {
		t.Errorf("no items expected: %+v", doc.Items)
	}
	found := false
	for _, w := range doc.ExtractionWarnings {
		if strings.Contains(w, "no line items") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing no-items warning: %v", doc.ExtractionWarnings)
	}
}
