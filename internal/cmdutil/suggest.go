package cmdutil

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestions caps the names offered for a misspelled parameter.
const maxSuggestions = 3

// maxEditDistance is the largest Levenshtein distance still suggested.
const maxEditDistance = 3

// Suggest returns up to three candidates that look like name: names that
// contain its letters in order (ignoring case) and names within a small
// edit distance. Closest matches come first.
func Suggest(name string, candidates []string) []string {
	if name == "" || len(candidates) == 0 {
		return nil
	}

	best := make(map[string]int)
	for _, r := range fuzzy.RankFindFold(name, candidates) {
		best[r.Target] = r.Distance
	}

	lower := strings.ToLower(name)
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(lower, strings.ToLower(c))
		if d > maxEditDistance {
			continue
		}
		if prev, ok := best[c]; !ok || d < prev {
			best[c] = d
		}
	}

	names := make([]string, 0, len(best))
	for c := range best {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool {
		if best[names[i]] != best[names[j]] {
			return best[names[i]] < best[names[j]]
		}
		return names[i] < names[j]
	})

	if len(names) > maxSuggestions {
		names = names[:maxSuggestions]
	}
	return names
}
