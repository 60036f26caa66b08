package catalog

import (
	"fmt"
	"math/rand/v2"
)

// people is a small slice of the remote collection in arrival order.
func people() []Entity {
	return []Entity{
		{Name: "Luke Skywalker", Gender: "male", Height: "172", Mass: "77", BirthYear: "19BBY", EyeColor: "blue"},
		{Name: "C-3PO", Gender: "n/a", Height: "167", Mass: "75", BirthYear: "112BBY", EyeColor: "yellow"},
		{Name: "R2-D2", Gender: "n/a", Height: "96", Mass: "32", BirthYear: "33BBY", EyeColor: "red"},
		{Name: "Darth Vader", Gender: "male", Height: "202", Mass: "136", BirthYear: "41.9BBY", EyeColor: "yellow"},
		{Name: "Leia Organa", Gender: "female", Height: "150", Mass: "49", BirthYear: "19BBY", EyeColor: "brown"},
		{Name: "Owen Lars", Gender: "male", Height: "178", Mass: "120", BirthYear: "52BBY", EyeColor: "blue"},
		{Name: "Obi-Wan Kenobi", Gender: "male", Height: "182", Mass: "77", BirthYear: "57BBY", EyeColor: "blue-gray"},
		{Name: "Jabba Desilijic Tiure", Gender: "hermaphrodite", Height: "175", Mass: "1,358", BirthYear: "600BBY", EyeColor: "orange"},
		{Name: "Lobot", Gender: "male", Height: "175", Mass: "79", BirthYear: "37BBY", EyeColor: "blue"},
		{Name: "Arvel Crynyd", Gender: "male", Height: "unknown", Mass: "unknown", BirthYear: "unknown", EyeColor: "brown"},
		{Name: "Lumiya"},
	}
}

// randomBaseline builds a deterministic pseudo-random collection with
// duplicate names and missing optional fields.
func randomBaseline(seed uint64, n int) []Entity {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	genders := []string{"", "male", "female", "n/a", "none"}
	eyes := []string{"", "blue", "brown", "red", "yellow", "blue-gray"}
	syllables := []string{"lu", "ke", "na", "ob", "wan", "ar", "le", "ia", "an", "sky"}

	out := make([]Entity, n)
	for i := range out {
		name := ""
		for j := 0; j < 2+r.IntN(3); j++ {
			name += syllables[r.IntN(len(syllables))]
		}
		if r.IntN(2) == 0 {
			name = string(name[0]-'a'+'A') + name[1:]
		}
		height := ""
		if r.IntN(4) > 0 {
			height = fmt.Sprintf("%d", 60+r.IntN(200))
		}
		out[i] = Entity{
			Name:     name,
			Gender:   genders[r.IntN(len(genders))],
			Height:   NumericString(height),
			EyeColor: eyes[r.IntN(len(eyes))],
			Mass:     NumericString(fmt.Sprintf("%d", i)),
		}
	}
	return out
}

func names(entities []Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.Name
	}
	return out
}
