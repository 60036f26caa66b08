package catalog

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Sort fields accepted by FieldSorter.
const (
	FieldName      = "name"
	FieldGender    = "gender"
	FieldHeight    = "height"
	FieldMass      = "mass"
	FieldBirthYear = "birthYear"
	FieldEyeColor  = "eyeColor"
)

// Sort orders accepted by FieldSorter.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// FieldSorter re-sorts an ordered result by an explicit field.
// Text fields collate with the Comparator; height, mass and birth year sort
// numerically. Values that cannot be parsed ("unknown") always sort last,
// whatever the order.
type FieldSorter struct {
	comparator  *Comparator
	validFields map[string]bool
}

// NewFieldSorter creates a FieldSorter that collates text with c.
func NewFieldSorter(c *Comparator) *FieldSorter {
	return &FieldSorter{
		comparator: c,
		validFields: map[string]bool{
			FieldName:      true,
			FieldGender:    true,
			FieldHeight:    true,
			FieldMass:      true,
			FieldBirthYear: true,
			FieldEyeColor:  true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *FieldSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields in a stable order.
func (s *FieldSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// Sort returns a new slice ordered by field and order. The sort is stable,
// so entities that compare equal keep their incoming (ranked) order.
// An invalid field returns the input unchanged.
func (s *FieldSorter) Sort(entities []Entity, field, order string) []Entity {
	if !s.IsValidField(field) {
		return entities
	}

	sorted := slices.Clone(entities)
	desc := order == OrderDesc

	slices.SortStableFunc(sorted, func(a, b Entity) int {
		switch field {
		case FieldHeight:
			return compareMeasured(a.Height.String(), b.Height.String(), parseMeasure, desc)
		case FieldMass:
			return compareMeasured(a.Mass.String(), b.Mass.String(), parseMeasure, desc)
		case FieldBirthYear:
			return compareMeasured(a.BirthYear, b.BirthYear, ParseBirthYear, desc)
		default:
			c := s.comparator.Compare(textField(a, field), textField(b, field))
			if desc {
				return -c
			}
			return c
		}
	})

	return sorted
}

func textField(e Entity, field string) string {
	switch field {
	case FieldGender:
		return e.Gender
	case FieldEyeColor:
		return e.EyeColor
	default:
		return e.Name
	}
}

// compareMeasured orders parseable values before unparseable ones.
func compareMeasured(a, b string, parse func(string) (float64, bool), desc bool) int {
	av, aok := parse(a)
	bv, bok := parse(b)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	if desc {
		return cmp.Compare(bv, av)
	}
	return cmp.Compare(av, bv)
}

// ParseBirthYear converts a galactic-standard year such as "19BBY" or "4ABY"
// into a signed number of years relative to the Battle of Yavin (BBY is negative).
func ParseBirthYear(s string) (float64, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	sign := 1.0
	switch {
	case strings.HasSuffix(s, "BBY"):
		sign = -1
		s = strings.TrimSuffix(s, "BBY")
	case strings.HasSuffix(s, "ABY"):
		s = strings.TrimSuffix(s, "ABY")
	default:
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return sign * v, true
}
