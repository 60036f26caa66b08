package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldSorter(t *testing.T) {
	c := DefaultComparator()
	s := NewFieldSorter(c)
	in := c.SortByName(people())

	t.Run("height ascending puts unknown last", func(t *testing.T) {
		sorted := s.Sort(in, FieldHeight, OrderAsc)
		assert.Equal(t, "R2-D2", sorted[0].Name)
		assert.Equal(t, "Arvel Crynyd", sorted[len(sorted)-2].Name)
		assert.Equal(t, "Lumiya", sorted[len(sorted)-1].Name)
	})

	t.Run("height descending still puts unknown last", func(t *testing.T) {
		sorted := s.Sort(in, FieldHeight, OrderDesc)
		assert.Equal(t, "Darth Vader", sorted[0].Name)
		assert.Equal(t, "Lumiya", sorted[len(sorted)-1].Name)
	})

	t.Run("mass understands thousands separators", func(t *testing.T) {
		sorted := s.Sort(in, FieldMass, OrderDesc)
		assert.Equal(t, "Jabba Desilijic Tiure", sorted[0].Name)
	})

	t.Run("birth year orders BBY before ABY", func(t *testing.T) {
		sorted := s.Sort(in, FieldBirthYear, OrderAsc)
		assert.Equal(t, "Jabba Desilijic Tiure", sorted[0].Name)
		assert.Equal(t, "C-3PO", sorted[1].Name)
	})

	t.Run("equal keys keep incoming order", func(t *testing.T) {
		sorted := s.Sort(in, FieldBirthYear, OrderAsc)
		var nineteen []string
		for _, e := range sorted {
			if e.BirthYear == "19BBY" {
				nineteen = append(nineteen, e.Name)
			}
		}
		assert.Equal(t, []string{"Leia Organa", "Luke Skywalker"}, nineteen)
	})

	t.Run("name descending", func(t *testing.T) {
		sorted := s.Sort(in, FieldName, OrderDesc)
		assert.Equal(t, "R2-D2", sorted[0].Name)
		assert.Equal(t, "Arvel Crynyd", sorted[len(sorted)-1].Name)
	})

	t.Run("invalid field returns input", func(t *testing.T) {
		assert.Equal(t, in, s.Sort(in, "planet", OrderAsc))
	})

	t.Run("valid fields", func(t *testing.T) {
		assert.Equal(t, []string{"birthYear", "eyeColor", "gender", "height", "mass", "name"}, s.GetValidFields())
		assert.True(t, s.IsValidField(FieldMass))
		assert.False(t, s.IsValidField("homeworld"))
	})
}

func TestParseBirthYear(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{in: "19BBY", want: -19, wantOK: true},
		{in: "41.9BBY", want: -41.9, wantOK: true},
		{in: "4ABY", want: 4, wantOK: true},
		{in: " 8bby ", want: -8, wantOK: true},
		{in: "unknown"},
		{in: ""},
		{in: "BBY"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseBirthYear(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}
