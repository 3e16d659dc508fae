package bench

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Luktock/recipe-selection-system/recipe"
)

// DefaultSeed keeps generated data reproducible between runs.
const DefaultSeed = 42

var (
	categories  = []string{recipe.CategorySoup, recipe.CategoryStarter, recipe.CategoryMain, recipe.CategoryDessert}
	ingredients = []string{"tomato", "onion", "garlic", "rice", "flour", "egg", "milk", "butter", "beef", "basil", "lentils", "sugar"}
)

// Generate returns size random but valid recipes.
func Generate(size int, seed int64) []*recipe.Recipe {
	rng := rand.New(rand.NewSource(seed))
	out := make([]*recipe.Recipe, size)
	for i := range out {
		picked := make([]string, 1+rng.Intn(4))
		for j := range picked {
			picked[j] = ingredients[rng.Intn(len(ingredients))]
		}
		r := recipe.New(
			fmt.Sprintf("Recipe %d", i+1),
			categories[rng.Intn(len(categories))],
			math.Round(rng.Float64()*2500)/100,
			5+rng.Intn(176),
			picked,
			[]string{"prepare", "cook", "serve"},
		)
		r.Rating = float64(rng.Intn(11)) / 2
		out[i] = r
	}
	return out
}
