package catalog

import (
	"github.com/sahilm/fuzzy"
)

// entityNames implements fuzzy.Source over entity names.
type entityNames []Entity

func (n entityNames) String(i int) string {
	return n[i].Name
}

func (n entityNames) Len() int {
	return len(n)
}

// Suggest returns up to limit entity names that fuzzily resemble query,
// best match first. It is used when a query matches nothing, e.g. "lsky"
// suggests "Luke Skywalker".
func Suggest(baseline []Entity, query string, limit int) []string {
	if query == "" || limit <= 0 || len(baseline) == 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, entityNames(baseline))

	seen := make(map[string]bool, limit)
	suggestions := make([]string, 0, limit)
	for _, m := range matches {
		name := baseline[m.Index].Name
		if seen[name] {
			continue
		}
		seen[name] = true
		suggestions = append(suggestions, name)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}
