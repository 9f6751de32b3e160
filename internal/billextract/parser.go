// Package billextract turns page-ordered OCR text into the structured
// bill document: header and patient blocks, categorized line items,
// payments, and the grand total.
package billextract

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/medassure/bill-verifier/internal/entity"
	"github.com/medassure/bill-verifier/internal/extract"
)

var (
	// trailing rupee amount, with optional thousands separators
	reTrailAmount = regexp.MustCompile(`(?i)(?:rs\.?|₹|inr)?\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)\s*$`)
	reNumber      = regexp.MustCompile(`^[0-9][0-9,]*(?:\.[0-9]{1,2})?$`)

	// a category heading carries no digits and little punctuation
	reHeading = regexp.MustCompile(`^[A-Za-z][A-Za-z &/()-]{2,40}:?\s*$`)

	reKV = regexp.MustCompile(`^\s*([A-Za-z .]+?)\s*[:#]\s*(.+)$`)

	reGrandTotal = regexp.MustCompile(`(?i)^(grand\s+total|total\s+amount|net\s+(amount|payable))\b`)
	rePayment    = regexp.MustCompile(`(?i)^(paid|payment|amount\s+received|received|advance\s+paid)\b`)
	reSubtotal   = regexp.MustCompile(`(?i)^(sub\s*-?\s*total|total)\b`)
)

// Parser builds bill documents from OCR pages.
type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse walks the pages line by line. Category headings open item
// sections; lines with trailing amounts become item rows; recognized
// header/patient/payment/total lines fill their blocks.
func (p *Parser) Parse(pages []extract.Page, ocrWarnings []string) *entity.BillDocument {
	doc := &entity.BillDocument{
		Items:              map[string][]entity.ItemRow{},
		PageCount:          len(pages),
		ExtractionWarnings: append([]string(nil), ocrWarnings...),
	}

	category := ""
	var raw strings.Builder
	var itemSum float64
	statedTotal := math.NaN()

	for _, page := range pages {
		if raw.Len() > 0 {
			raw.WriteString("\n\f\n")
		}
		raw.WriteString(page.Text)

		for _, line := range strings.Split(page.Text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if p.captureMetadata(doc, line) {
				continue
			}

			if reGrandTotal.MatchString(line) {
				if amt, ok := trailingAmount(line); ok {
					statedTotal = amt
				}
				continue
			}
			if rePayment.MatchString(line) {
				if amt, ok := trailingAmount(line); ok {
					doc.Payments = append(doc.Payments, entity.Payment{
						Mode:   paymentMode(line),
						Amount: amt,
					})
				}
				continue
			}
			if reSubtotal.MatchString(line) {
				continue // per-category subtotals are recomputed, not trusted
			}

			if amt, ok := trailingAmount(line); ok {
				name, qty, rate := splitItemColumns(trimAmount(line))
				if name == "" {
					continue
				}
				cat := category
				if cat == "" {
					cat = "Uncategorized"
				}
				row := entity.ItemRow{
					ItemName: name,
					Amount:   amt,
					Quantity: qty,
					Rate:     rate,
					Page:     intPtr(page.Number),
				}
				if _, seen := doc.Items[cat]; !seen {
					doc.CategoryOrder = append(doc.CategoryOrder, cat)
				}
				doc.Items[cat] = append(doc.Items[cat], row)
				itemSum += amt
				continue
			}

			if reHeading.MatchString(line) {
				category = strings.TrimSuffix(strings.TrimSpace(line), ":")
			}
		}
	}

	doc.RawOCRText = raw.String()
	if !math.IsNaN(statedTotal) {
		doc.GrandTotal = statedTotal
		if math.Abs(statedTotal-itemSum) > 0.01 {
			doc.ExtractionWarnings = append(doc.ExtractionWarnings,
				"stated grand total "+formatAmount(statedTotal)+
					" differs from item sum "+formatAmount(itemSum))
		}
	} else {
		doc.GrandTotal = round2(itemSum)
	}

	if len(doc.Items) == 0 {
		doc.ExtractionWarnings = append(doc.ExtractionWarnings, "no line items extracted")
	}
	p.logger.Info("billextract.parsed",
		"pages", len(pages),
		"categories", len(doc.Items),
		"grand_total", doc.GrandTotal,
		"warnings", len(doc.ExtractionWarnings),
	)
	return doc
}

// captureMetadata fills patient and header fields from key:value lines.
func (p *Parser) captureMetadata(doc *entity.BillDocument, line string) bool {
	m := reKV.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	key := strings.ToLower(strings.TrimSpace(m[1]))
	val := strings.TrimSpace(m[2])
	if val == "" {
		return false
	}
	switch key {
	case "patient name", "patient", "name":
		doc.Patient.Name = val
	case "mrn", "mrn no", "uhid", "uhid no":
		doc.Patient.MRN = val
	case "age":
		doc.Patient.Age = val
	case "sex", "gender":
		doc.Patient.Sex = val
	case "bill no", "bill number", "invoice no", "invoice number":
		doc.Header.BillNumber = val
	case "bill date", "billing date", "invoice date", "date":
		doc.Header.BillingDate = normalizeDate(val)
	case "admission date", "admit date", "doa":
		doc.Header.AdmitDate = normalizeDate(val)
	case "ward", "room", "bed":
		doc.Header.Ward = val
	default:
		return false
	}
	return true
}

// trailingAmount parses the rupee amount at the end of a line.
func trailingAmount(line string) (float64, bool) {
	m := reTrailAmount.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	// A bare heading-like line ("2024") is not an amount row.
	if strings.TrimSpace(trimAmount(line)) == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func trimAmount(line string) string {
	loc := reTrailAmount.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return strings.TrimSpace(line[:loc[0]])
}

// splitItemColumns peels optional trailing qty/rate columns off an item
// line: "<name> <qty> <rate>" or "<name> <qty> x <rate>".
func splitItemColumns(rest string) (name string, qty, rate *float64) {
	fields := strings.Fields(rest)
	// "<name> 2 x 450.00"
	if len(fields) >= 3 && strings.EqualFold(fields[len(fields)-2], "x") {
		if r, err := parseNumber(fields[len(fields)-1]); err == nil {
			if q, err := parseNumber(fields[len(fields)-3]); err == nil {
				return strings.Join(fields[:len(fields)-3], " "), &q, &r
			}
		}
	}
	// "<name> 2 450.00"
	if len(fields) >= 3 && reNumber.MatchString(fields[len(fields)-1]) && reNumber.MatchString(fields[len(fields)-2]) {
		r, _ := parseNumber(fields[len(fields)-1])
		q, _ := parseNumber(fields[len(fields)-2])
		if q == math.Trunc(q) && q > 0 && q < 1000 {
			return strings.Join(fields[:len(fields)-2], " "), &q, &r
		}
	}
	return rest, nil, nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006", "02.01.2006", "2 Jan 2006", "02 Jan 2006"}

// normalizeDate converts recognized date formats to YYYY-MM-DD; unknown
// formats pass through untouched.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := parseDate(layout, s); err == nil {
			return t
		}
	}
	return s
}

func parseDate(layout, s string) (string, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

func paymentMode(line string) string {
	l := strings.ToLower(line)
	switch {
	case strings.Contains(l, "card"):
		return "card"
	case strings.Contains(l, "upi"):
		return "upi"
	case strings.Contains(l, "cash"):
		return "cash"
	case strings.Contains(l, "cheque"), strings.Contains(l, "check"):
		return "cheque"
	}
	return ""
}

func intPtr(i int) *int { return &i }

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(round2(f), 'f', 2, 64)
}
