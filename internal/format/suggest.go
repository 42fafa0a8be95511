package format

import "github.com/sahilm/fuzzy"

// SuggestLicense returns the closest known SPDX identifier for an unknown
// license string, or "" when nothing is close enough to be useful.
func SuggestLicense(s string) string {
	return suggest(s, KnownLicenses)
}

// SuggestCategory returns the closest approved category for an unknown
// category string, or "" when nothing matches.
func SuggestCategory(s string) string {
	return suggest(s, ApprovedCategories)
}

func suggest(s string, candidates []string) string {
	matches := fuzzy.Find(s, candidates)
	if len(matches) > 0 {
		return candidates[matches[0].Index]
	}

	// Longer inputs like "MIT License" never fuzzy-match a shorter
	// candidate, so also try each candidate as the pattern.
	best := ""
	bestScore := -1
	for _, c := range candidates {
		rev := fuzzy.Find(c, []string{s})
		if len(rev) > 0 && rev[0].Score > bestScore {
			best = c
			bestScore = rev[0].Score
		}
	}
	return best
}
