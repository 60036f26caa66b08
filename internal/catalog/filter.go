package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Ranking is the result of a query against the baseline collection.
type Ranking struct {
	// Query is the normalized query the ranking was computed for.
	Query string

	// Items holds the matching entities: name-prefix matches first, then
	// the remaining matches, each group in name order.
	Items []Entity

	// Exact is the number of leading Items whose name starts with Query.
	Exact int
}

// Partial returns the matches whose name does not start with the query.
func (r Ranking) Partial() []Entity {
	return r.Items[r.Exact:]
}

// Prefixed returns the matches whose name starts with the query.
func (r Ranking) Prefixed() []Entity {
	return r.Items[:r.Exact]
}

// Normalize case-folds a query so it can be compared against folded fields.
// The empty string stays empty and means "no filtering".
func Normalize(query string) string {
	if query == "" {
		return ""
	}
	return cases.Fold().String(query)
}

// Matches reports whether the normalized query occurs in the entity's name,
// gender, height or eye colour. Empty optional fields never match.
func Matches(e Entity, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range []string{e.Name, e.Gender, e.Height.String(), e.EyeColor} {
		if field == "" {
			continue
		}
		if strings.Contains(Normalize(field), query) {
			return true
		}
	}
	return false
}

// HasNamePrefix reports whether the entity's name starts with the normalized query.
func HasNamePrefix(e Entity, query string) bool {
	return strings.HasPrefix(Normalize(e.Name), query)
}

// Rank filters baseline by query and orders the matches in two tiers.
// An empty query returns baseline itself, unchanged and in the same order.
// baseline is never modified.
func (c *Comparator) Rank(baseline []Entity, query string) Ranking {
	q := Normalize(query)
	if q == "" {
		return Ranking{Items: baseline}
	}

	var exact, partial []Entity
	for _, e := range baseline {
		if !Matches(e, q) {
			continue
		}
		if HasNamePrefix(e, q) {
			exact = append(exact, e)
		} else {
			partial = append(partial, e)
		}
	}

	slices.SortStableFunc(exact, c.CompareByName)
	slices.SortStableFunc(partial, c.CompareByName)

	items := make([]Entity, 0, len(exact)+len(partial))
	items = append(items, exact...)
	items = append(items, partial...)

	return Ranking{Query: q, Items: items, Exact: len(exact)}
}

// Filter returns the ranked matches of query in baseline.
func (c *Comparator) Filter(baseline []Entity, query string) []Entity {
	return c.Rank(baseline, query).Items
}
