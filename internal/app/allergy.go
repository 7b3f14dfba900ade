package app

import (
	"strings"

	"bitespot/internal/domain"
)

// NormalizeExclusions lower-cases and trims caller-supplied exclusion terms,
// dropping blanks.
func NormalizeExclusions(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if n := strings.ToLower(strings.TrimSpace(t)); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// FilterAllergySafe drops candidates whose ingredients or allergens contain
// any excluded term. Matching is exact token, case-insensitive; "peanut"
// does not exclude "peanuts". Survivors are annotated allergy-safe.
func FilterAllergySafe(candidates []domain.RankedCandidate, exclusions []string) []domain.RankedCandidate {
	normalized := NormalizeExclusions(exclusions)
	if len(normalized) == 0 {
		return candidates
	}

	safeFor := make([]string, 0, len(normalized))
	for _, term := range normalized {
		safeFor = append(safeFor, titleCase(term))
	}
	message := "Safe: No " + strings.Join(safeFor, ", No ")

	out := make([]domain.RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		if containsExcluded(c.Ingredients, normalized) || containsExcluded(c.Allergens, normalized) {
			continue
		}
		c.AllergySafe = true
		c.SafeFor = safeFor
		c.SafeForMessage = message
		out = append(out, c)
	}
	return out
}

func containsExcluded(tokens, excluded []string) bool {
	for _, tok := range tokens {
		low := strings.ToLower(tok)
		for _, ex := range excluded {
			if low == ex {
				return true
			}
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
