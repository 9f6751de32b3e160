package catalog

import (
	"regexp"
	"strings"
)

var (
	reSlugSpecial    = regexp.MustCompile(`[^\w\s-]`)
	reSlugSeparators = regexp.MustCompile(`[-\s]+`)
	reSlugRepeats    = regexp.MustCompile(`_+`)
)

// Slug normalizes a hospital name to a filesystem-safe file stem:
// "Max Super-Specialty Hospital" -> "max_super_specialty_hospital".
// Tie-up files are named "<slug>.json".
func Slug(hospitalName string) string {
	if hospitalName == "" {
		return ""
	}
	s := strings.ToLower(hospitalName)
	s = reSlugSpecial.ReplaceAllString(s, "_")
	s = reSlugSeparators.ReplaceAllString(s, "_")
	s = reSlugRepeats.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// DisplayName converts a tie-up file stem back to a readable hospital
// name: "apollo_hospital" -> "Apollo Hospital".
func DisplayName(stem string) string {
	words := strings.Split(strings.ReplaceAll(stem, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
