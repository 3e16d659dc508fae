package catalog

import (
	"strings"

	"github.com/Luktock/recipe-selection-system/recipe"
)

// SearchByName returns copies of recipes whose name contains term, ignoring case.
func (c *Catalog) SearchByName(term string) []*recipe.Recipe {
	term = normalize(term)
	return c.collect(func(r *recipe.Recipe) bool {
		return strings.Contains(strings.ToLower(r.Name), term)
	})
}

// SearchByCategory returns copies of recipes in category, ignoring case.
func (c *Catalog) SearchByCategory(category string) []*recipe.Recipe {
	category = normalize(category)
	return c.collect(func(r *recipe.Recipe) bool {
		return strings.ToLower(r.Category) == category
	})
}

// SearchByIngredient returns copies of recipes with an ingredient containing
// include and, when exclude is non-blank, no ingredient containing exclude.
func (c *Catalog) SearchByIngredient(include, exclude string) []*recipe.Recipe {
	match := recipe.HasIngredient(normalize(include))
	if exclude = normalize(exclude); exclude != "" {
		match = recipe.And(match, recipe.Not(recipe.HasIngredient(exclude)))
	}
	return c.collect(match)
}

func (c *Catalog) collect(match recipe.Predicate) []*recipe.Recipe {
	var out []*recipe.Recipe
	for _, r := range c.recipes {
		if match(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
