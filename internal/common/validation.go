package common

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var employeeIDRe = regexp.MustCompile(`^\d{8}$`)

// ValidateEmployeeID enforces the 8-decimal-digit employee id format.
func ValidateEmployeeID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: employee_id is required", ErrInvalidInput)
	}
	if !employeeIDRe.MatchString(id) {
		return fmt.Errorf("%w: employee_id must contain exactly 8 digits", ErrInvalidInput)
	}
	return nil
}

// ValidateHospitalName rejects empty or whitespace-only hospital names.
func ValidateHospitalName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: hospital_name is required and cannot be empty", ErrInvalidInput)
	}
	return nil
}

// ParseInvoiceDate parses an optional ISO date. Empty input yields nil.
func ParseInvoiceDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%w: invoice_date must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	return &t, nil
}

// ValidatePDFUpload checks the submitted bytes and filename.
func ValidatePDFUpload(filename string, size int) error {
	if filename == "" || !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return fmt.Errorf("%w: invalid file type, only PDF files are accepted", ErrInvalidInput)
	}
	if size <= 0 {
		return fmt.Errorf("%w: uploaded PDF is empty", ErrInvalidInput)
	}
	return nil
}

// TruncateError caps error text persisted to the store.
func TruncateError(msg string, max int) string {
	if max <= 0 {
		max = 2000
	}
	if len(msg) <= max {
		return msg
	}
	return msg[:max] + "...(truncated)"
}
