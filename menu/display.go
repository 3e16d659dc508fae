package menu

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Luktock/recipe-selection-system/recipe"
)

var upper = cases.Upper(language.English)

func (m *Menu) money(v float64) string {
	return m.printer.Sprintf("$%.2f", v)
}

func (m *Menu) header(title string) {
	m.println("\n" + rule)
	m.println(title)
	m.println(rule)
}

func (m *Menu) showRecipe(r *recipe.Recipe) {
	m.header("Recipe: " + r.Name)
	m.printf("Category: %s\n", r.Category)
	m.printf("Price: %s\n", m.money(r.Price))
	m.printf("Cooking Time: %d minutes\n", r.CookingTime)
	m.printf("Rating: %.1f/5\n", r.Rating)
	m.println("\nIngredients:")
	for _, ing := range r.Ingredients {
		m.printf("  - %s\n", ing)
	}
	m.println("\nSteps:")
	for i, step := range r.Steps {
		m.printf("  %d. %s\n", i+1, step)
	}
	m.println(rule)
}

// summary is the one-line form used in listings.
func (m *Menu) summary(r *recipe.Recipe) string {
	return fmt.Sprintf("%s (%s) - %s, %d min, %.1f/5", r.Name, r.Category, m.money(r.Price), r.CookingTime, r.Rating)
}

func (m *Menu) listRecipes(recipes []*recipe.Recipe, first int) {
	for i, r := range recipes {
		m.printf("%d. %s\n", first+i, m.summary(r))
	}
}

// keyValue renders the sort attribute of r.
func (m *Menu) keyValue(key recipe.Key, r *recipe.Recipe) string {
	switch key {
	case recipe.KeyPrice:
		return m.money(r.Price)
	case recipe.KeyCookingTime:
		return fmt.Sprintf("%d min", r.CookingTime)
	case recipe.KeyRating:
		return fmt.Sprintf("%.1f/5", r.Rating)
	default:
		v, err := key.Value(r)
		if err != nil {
			return "?"
		}
		return fmt.Sprint(v)
	}
}

func (m *Menu) listSorted(key recipe.Key, recipes []*recipe.Recipe, first int) {
	for i, r := range recipes {
		m.printf("%d. %s - %s\n", first+i, r.Name, m.keyValue(key, r))
	}
}

func title(key recipe.Key) string {
	return upper.String(key.String())
}
