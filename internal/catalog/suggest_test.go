package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	baseline := DefaultComparator().SortByName(people())

	t.Run("best match first", func(t *testing.T) {
		got := Suggest(baseline, "dvdr", 3)
		assert.NotEmpty(t, got)
		assert.Equal(t, "Darth Vader", got[0])
	})

	t.Run("respects limit", func(t *testing.T) {
		assert.LessOrEqual(t, len(Suggest(baseline, "o", 2)), 2)
	})

	t.Run("deduplicates names", func(t *testing.T) {
		dupes := []Entity{{Name: "Wedge Antilles"}, {Name: "Wedge Antilles"}, {Name: "Wicket"}}
		assert.Equal(t, []string{"Wedge Antilles"}, Suggest(dupes, "wdg", 3))
	})

	t.Run("nothing to suggest", func(t *testing.T) {
		assert.Nil(t, Suggest(baseline, "", 3))
		assert.Nil(t, Suggest(nil, "luke", 3))
		assert.Nil(t, Suggest(baseline, "luke", 0))
		assert.Empty(t, Suggest(baseline, "qqqq", 3))
	})
}
