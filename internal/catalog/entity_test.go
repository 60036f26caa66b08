package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntity_UnmarshalJSON(t *testing.T) {
	t.Run("remote field names", func(t *testing.T) {
		var e Entity
		err := json.Unmarshal([]byte(`{
			"name": "Luke Skywalker",
			"height": "172",
			"mass": "77",
			"birth_year": "19BBY",
			"eye_color": "blue",
			"gender": "male",
			"homeworld": "https://swapi.dev/api/planets/1/"
		}`), &e)
		require.NoError(t, err)
		assert.Equal(t, Entity{
			Name:      "Luke Skywalker",
			Gender:    "male",
			Height:    "172",
			Mass:      "77",
			BirthYear: "19BBY",
			EyeColor:  "blue",
		}, e)
	})

	t.Run("numeric height", func(t *testing.T) {
		var e Entity
		require.NoError(t, json.Unmarshal([]byte(`{"name":"R2-D2","height":96}`), &e))
		assert.Equal(t, NumericString("96"), e.Height)
	})

	t.Run("null height", func(t *testing.T) {
		var e Entity
		require.NoError(t, json.Unmarshal([]byte(`{"name":"R2-D2","height":null}`), &e))
		assert.Empty(t, e.Height)
	})

	t.Run("missing optional fields", func(t *testing.T) {
		var e Entity
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Lumiya"}`), &e))
		assert.Equal(t, Entity{Name: "Lumiya"}, e)
	})

	t.Run("height of the wrong type", func(t *testing.T) {
		var e Entity
		assert.Error(t, json.Unmarshal([]byte(`{"name":"x","height":{"cm":1}}`), &e))
	})
}

func TestNumericString_Float(t *testing.T) {
	v, ok := NumericString("1,358").Float()
	assert.True(t, ok)
	assert.InDelta(t, 1358.0, v, 0.001)

	_, ok = NumericString("unknown").Float()
	assert.False(t, ok)

	_, ok = NumericString("").Float()
	assert.False(t, ok)
}
