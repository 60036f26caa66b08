package catalog

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation locale used when none is configured.
const DefaultLocale = "en"

// Comparator orders entities by name using locale-aware collation.
// The underlying collator keeps scratch buffers, so calls are serialized.
type Comparator struct {
	mu       sync.Mutex
	collator *collate.Collator
	tag      language.Tag
}

// NewComparator creates a Comparator for the given language tag.
func NewComparator(tag language.Tag) *Comparator {
	return &Comparator{
		collator: collate.New(tag),
		tag:      tag,
	}
}

// NewComparatorForLocale parses a BCP 47 locale such as "en" or "es-ES" and
// returns a Comparator for it.
func NewComparatorForLocale(locale string) (*Comparator, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return NewComparator(tag), nil
}

// DefaultComparator returns a Comparator for DefaultLocale.
func DefaultComparator() *Comparator {
	return NewComparator(language.English)
}

// Locale returns the language tag the Comparator collates for.
func (c *Comparator) Locale() language.Tag {
	return c.tag
}

// Compare collates two strings and returns -1, 0 or +1.
func (c *Comparator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collator.CompareString(a, b)
}

// CompareByName orders two entities by name.
func (c *Comparator) CompareByName(a, b Entity) int {
	return c.Compare(a.Name, b.Name)
}

// SortByName returns a new slice holding entities in name order.
// The sort is stable: entities with equal names keep their arrival order.
// The input slice is not modified.
func (c *Comparator) SortByName(entities []Entity) []Entity {
	sorted := slices.Clone(entities)
	if sorted == nil {
		sorted = []Entity{}
	}
	slices.SortStableFunc(sorted, c.CompareByName)
	return sorted
}
