package tagging

import (
	"strings"
)

// MatchAgainstVocabulary partitions candidates into names that fuzzy-match
// an existing vocabulary entry and names that are new. A candidate matches
// when either string contains the other, case-insensitively; the first
// vocabulary entry that matches wins and its spelling is recorded, not the
// candidate's. Both result lists are deduplicated in first-seen order.
//
// Known precision risk: bidirectional containment lets very short or
// generic vocabulary entries absorb unrelated longer candidates (a
// one-character tag matches nearly everything). Kept as-is.
func MatchAgainstVocabulary(candidates, vocabulary []string) (existing, fresh []string) {
	existing = []string{}
	fresh = []string{}
	seenExisting := make(map[string]bool)
	seenFresh := make(map[string]bool)

	for _, candidate := range candidates {
		lowered := strings.ToLower(candidate)
		matched := ""
		for _, entry := range vocabulary {
			entryLowered := strings.ToLower(entry)
			if strings.Contains(entryLowered, lowered) || strings.Contains(lowered, entryLowered) {
				matched = entry
				break
			}
		}
		if matched != "" {
			if !seenExisting[matched] {
				seenExisting[matched] = true
				existing = append(existing, matched)
			}
		} else if !seenFresh[candidate] {
			seenFresh[candidate] = true
			fresh = append(fresh, candidate)
		}
	}

	return existing, fresh
}
