package constants

import "strings"

// adminPhrases are administrative / non-comparable charge markers. An item
// whose normalized name contains one of these is never priced against the
// tie-up sheet; it is reported as ALLOWED_NOT_COMPARABLE instead.
var adminPhrases = []string{
	"registration fee",
	"registration charge",
	"admission fee",
	"admission charge",
	"processing fee",
	"processing charge",
	"deposit",
	"advance",
	"convenience fee",
	"service charge",
	"surcharge",
	"medical record fee",
	"mrd charge",
	"file charge",
	"discount",
	"refund",
}

// IsAdminPhrase reports whether the normalized item text names an
// administrative charge.
func IsAdminPhrase(normalized string) bool {
	if normalized == "" {
		return false
	}
	for _, p := range adminPhrases {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}

// Stopwords excluded from content-token sets when scoring matches.
var Stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "at": {}, "by": {}, "for": {},
	"in": {}, "of": {}, "on": {}, "or": {}, "the": {}, "to": {},
	"with": {}, "per": {}, "no": {}, "non": {},
}
