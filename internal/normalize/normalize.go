// Package normalize turns free-text bill lines into comparable form. Rules
// are generic: no hospital- or drug-specific tables. Every function is pure.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// leading serial numbers: "1.", "23)", "a.", "(b)"
	reSerial = regexp.MustCompile(`^\s*(\(?[0-9]{1,3}[.)]|\(?[a-zA-Z][.)])\s+`)

	// doctor tokens and trailing credentials inside the same segment
	reDoctor      = regexp.MustCompile(`(?i)\b(dr|prof|mr|mrs|ms)\.?\s+[a-z][a-z.\s]*`)
	reCredentials = regexp.MustCompile(`(?i)\b(mbbs|md|ms|dnb|mch|dm|frcs|mrcp|phd)\b[.,]?`)

	// lot/batch/expiry markers with their values
	reLotBatch = regexp.MustCompile(`(?i)\b(lot|batch|b\.?no|exp|expiry|mfg|mfd)\b[.:#\s]*[a-z0-9/-]*`)

	// SKU / HSN style alphanumeric codes, length >= 6, must mix letters+digits
	reCode = regexp.MustCompile(`\b(?:[A-Z]+[0-9]|[0-9]+[A-Z])[A-Z0-9-]{4,}\b`)

	// dates: 12/03/2024, 2024-03-12, 12-Mar-24
	reDate = regexp.MustCompile(`(?i)\b(\d{1,4}[-/.]\d{1,2}[-/.]\d{1,4}|\d{1,2}[-\s](jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[-\s]\d{2,4})\b`)

	// quantity suffixes: "x 10", "qty 2", "10's", "strip of 10"
	reQuantity = regexp.MustCompile(`(?i)\b(x\s*\d+|qty[.:\s]*\d+|\d+\s*'s|strip\s+of\s+\d+|pack\s+of\s+\d+)\b`)

	// strength token: number immediately followed by a dose unit
	reStrength = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(mg|mcg|ml|g|iu|%)\b`)

	reSeparators = regexp.MustCompile(`[|:\-_/]+`)
	reSpaces     = regexp.MustCompile(`\s+`)
	reNonWord    = regexp.MustCompile(`[^a-z0-9.%\s]`)
)

// Normalize applies the stage-1 removal rules in order and returns the
// lowercased, whitespace-collapsed remainder.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	t := reSerial.ReplaceAllString(s, " ")

	// Drop segments after a pipe or " - " that read as doctor attributions.
	t = stripAttributionSegments(t)

	t = reDoctor.ReplaceAllString(t, " ")
	t = reCredentials.ReplaceAllString(t, " ")
	t = reLotBatch.ReplaceAllString(t, " ")
	t = reCode.ReplaceAllString(t, " ")
	t = reDate.ReplaceAllString(t, " ")

	// Join strength tokens to their unit ("5 mg" -> "5mg") before quantity
	// removal.
	t = reStrength.ReplaceAllString(t, "${1}${2}")
	t = reQuantity.ReplaceAllString(t, " ")

	t = reSeparators.ReplaceAllString(t, " ")
	t = strings.ToLower(t)
	t = reNonWord.ReplaceAllString(t, " ")
	t = reSpaces.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// stripAttributionSegments removes "| Dr. X" / " - Dr. X" style trailers.
// Non-doctor segments stay.
func stripAttributionSegments(s string) string {
	split := func(text, sep string) string {
		parts := strings.Split(text, sep)
		if len(parts) == 1 {
			return text
		}
		kept := parts[:1]
		for _, p := range parts[1:] {
			if reDoctor.MatchString(p) || reCredentials.MatchString(p) {
				continue
			}
			kept = append(kept, p)
		}
		return strings.Join(kept, sep)
	}
	s = split(s, "|")
	s = split(s, " - ")
	return s
}

// MedicalCore attempts to extract "<substance> <strength><unit>" from a
// normalized string. Returns ok=false when no strength pattern is present.
func MedicalCore(normalized string) (string, bool) {
	loc := reStrength.FindStringSubmatchIndex(normalized)
	if loc == nil {
		return "", false
	}
	strength := strings.ReplaceAll(normalized[loc[0]:loc[1]], " ", "")
	substance := strings.TrimSpace(normalized[:loc[0]])
	if substance == "" {
		return "", false
	}
	// The substance is every word before the strength, minus trailing
	// numbers left over from pack sizes.
	words := strings.Fields(substance)
	for len(words) > 0 && isNumeric(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return "", false
	}
	return strings.Join(words, " ") + " " + strings.ToLower(strength), true
}

// Forms returns the normalized text plus the medical core when it differs.
// This is the set of texts indexed and matched per item.
func Forms(s string) []string {
	norm := Normalize(s)
	if norm == "" {
		return nil
	}
	out := []string{norm}
	if core, ok := MedicalCore(norm); ok && core != norm {
		out = append(out, core)
	}
	return out
}

// CollapseKey is the equality key for catalog lookups: lowercase with
// whitespace runs collapsed.
func CollapseKey(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(strings.ToLower(s), " "))
}

// CompactKey strips hyphens, underscores, and spaces entirely. Used by the
// artifact detector where header fragments vary in separators.
func CompactKey(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	for _, r := range []string{"-", "_", " "} {
		t = strings.ReplaceAll(t, r, "")
	}
	return t
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsPureNumber reports whether the normalized text is only digits,
// separators, and decimal points.
func IsPureNumber(normalized string) bool {
	if normalized == "" {
		return false
	}
	seenDigit := false
	for _, r := range normalized {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.' || r == ' ':
		default:
			return false
		}
	}
	return seenDigit
}

// LooksLikeCode reports long alphanumeric inventory-code remnants.
func LooksLikeCode(normalized string) bool {
	t := strings.ReplaceAll(normalized, " ", "")
	if len(t) < 6 {
		return false
	}
	var hasAlpha, hasDigit bool
	for _, r := range t {
		switch {
		case r >= 'a' && r <= 'z':
			hasAlpha = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			return false
		}
	}
	return hasAlpha && hasDigit
}

// LooksLikeLotBatch reports lot/batch/expiry remnants that survived
// normalization (bare markers with no medical content).
func LooksLikeLotBatch(normalized string) bool {
	fields := strings.Fields(normalized)
	if len(fields) == 0 || len(fields) > 2 {
		return false
	}
	switch fields[0] {
	case "lot", "batch", "bno", "exp", "expiry", "mfg", "mfd":
		return true
	}
	return false
}
