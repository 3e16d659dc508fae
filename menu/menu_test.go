package menu

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luktock/recipe-selection-system/catalog"
	"github.com/Luktock/recipe-selection-system/recipe"
)

// script feeds canned answers and reports io.EOF once they run out.
type script struct {
	lines   []string
	prompts []string
}

func (s *script) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	if line == "^C" {
		return "", ErrAborted
	}
	return line, nil
}

func fixture(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New(catalog.Options{})
	for _, r := range []*recipe.Recipe{
		recipe.New("A", recipe.CategoryMain, 12, 40, []string{"beef", "onion"}, []string{"brown", "braise"}),
		recipe.New("B", recipe.CategorySoup, 8, 20, []string{"tomato", "basil"}, []string{"simmer"}),
		recipe.New("C", recipe.CategoryStarter, 8, 10, []string{"bread", "garlic butter"}, []string{"toast"}),
		recipe.New("D", recipe.CategoryDessert, 5, 50, []string{"flour", "butter"}, []string{"bake"}),
	} {
		require.NoError(t, c.Add(r))
	}
	return c
}

func run(t *testing.T, c *catalog.Catalog, opts Options, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	m := New(c, &script{lines: lines}, &out, opts)
	require.NoError(t, m.Run())
	return out.String()
}

func names(c *catalog.Catalog) []string {
	var out []string
	for _, r := range c.List() {
		out = append(out, r.Name)
	}
	return out
}

func TestExitAndEOF(t *testing.T) {
	out := run(t, fixture(t), Options{}, "11")
	assert.Contains(t, out, "INTELLIGENT RECIPE SELECTION SYSTEM")
	assert.Contains(t, out, "Thank you for using")

	out = run(t, fixture(t), Options{})
	assert.Contains(t, out, "Goodbye!")
}

func TestInvalidChoiceAndAbort(t *testing.T) {
	out := run(t, fixture(t), Options{}, "42", "^C", "11")
	assert.Contains(t, out, "Invalid choice! Please enter 1-11.")
	assert.Contains(t, out, "^C")
}

func TestViewAllAndDetails(t *testing.T) {
	out := run(t, fixture(t), Options{}, "1", "2", "3", "2", "x", "2", "9", "11")
	assert.Contains(t, out, "ALL RECIPES (4 total)")
	assert.Contains(t, out, "2. B (soup) - $8.00, 20 min, 0.0/5")
	assert.Contains(t, out, "Recipe: C")
	assert.Contains(t, out, "  1. toast")
	assert.Contains(t, out, "Please enter a valid number!")
	assert.Contains(t, out, "invalid recipe number: 8")

	out = run(t, catalog.New(catalog.Options{}), Options{}, "1", "11")
	assert.Contains(t, out, "No recipes available yet!")
}

func TestAdd(t *testing.T) {
	c := fixture(t)
	out := run(t, c, Options{},
		"3", "B", "soup", "4.5", "15", "lentils", "", "carrot", "done", "boil", "DONE",
		"3", "Bad", "main", "cheap", "10",
		"3", "Endless", "main", "Inf", "10",
		"3", "Neg", "main", "-1", "10", "done", "done",
		"11")

	assert.Contains(t, out, `a recipe named "B" already exists`)
	assert.Contains(t, out, `Recipe "B" added successfully!`)
	assert.Equal(t, 2, strings.Count(out, "Invalid price or time! Recipe not added."))
	assert.Contains(t, out, "Error: invalid recipe")
	require.Equal(t, 5, c.Len())

	added, err := c.Get(4)
	require.NoError(t, err)
	assert.Equal(t, []string{"lentils", "carrot"}, added.Ingredients)
	assert.Equal(t, []string{"boil"}, added.Steps)
	assert.Equal(t, 4.5, added.Price)
}

func TestEdit(t *testing.T) {
	c := fixture(t)
	out := run(t, c, Options{},
		"4", "1", "Stew", "", "abc", "90", "y", "beef", "carrot", "done", "n",
		"11")
	assert.Contains(t, out, "Invalid price, keeping original")
	assert.Contains(t, out, "Recipe updated successfully!")

	r, err := c.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Stew", r.Name)
	assert.Equal(t, recipe.CategoryMain, r.Category)
	assert.Equal(t, 12.0, r.Price)
	assert.Equal(t, 90, r.CookingTime)
	assert.Equal(t, []string{"beef", "carrot"}, r.Ingredients)
	assert.Equal(t, []string{"brown", "braise"}, r.Steps)
}

func TestDelete(t *testing.T) {
	c := fixture(t)
	out := run(t, c, Options{}, "5", "2", "5", "0", "11")
	assert.Contains(t, out, `Recipe "B" deleted.`)
	assert.Contains(t, out, "invalid recipe number")
	assert.Equal(t, []string{"A", "C", "D"}, names(c))
}

func TestSearch(t *testing.T) {
	out := run(t, fixture(t), Options{},
		"6", "1", "c",
		"6", "2", "Soup",
		"6", "3", "butter",
		"6", "4", "butter", "garlic",
		"6", "4", "saffron", "",
		"6", "9",
		"11")
	assert.Contains(t, out, "- C (starter)")
	assert.Contains(t, out, "RECIPES IN CATEGORY: SOUP")
	assert.Contains(t, out, "- D (dessert) - $5.00, 50 min, 0.0/5")
	assert.Contains(t, out, "No recipes found.")
	assert.Contains(t, out, "Invalid search choice.")
}

func TestSortFiltered(t *testing.T) {
	c := fixture(t)
	out := run(t, c, Options{}, "7", "2", "1", "2", "11")

	assert.Contains(t, out, "SORTED BY COOKING_TIME WITH LOGICAL FILTER")
	assert.Contains(t, out, "Using Recursion (Merge Sort)")
	matched := strings.Index(out, "Matches filter:")
	rest := strings.Index(out, "Does not match filter:")
	require.True(t, matched >= 0 && rest > matched)
	assert.Contains(t, out[matched:rest], "1. C - 10 min\n2. B - 20 min")
	assert.Contains(t, out[rest:], "3. A - 40 min\n4. D - 50 min")
	assert.Equal(t, []string{"C", "B", "A", "D"}, names(c))
}

func TestSortPlain(t *testing.T) {
	c := fixture(t)
	out := run(t, c, Options{}, "7", "1", "2", "1", "11")
	assert.Contains(t, out, "SORTED BY PRICE - Using Loop (Bubble Sort)")
	assert.Contains(t, out, "1. D - $5.00\n2. B - $8.00\n3. C - $8.00\n4. A - $12.00")
	assert.Equal(t, []string{"D", "B", "C", "A"}, names(c))
}

func TestSortInvalidChoices(t *testing.T) {
	c := fixture(t)
	out := run(t, c, Options{}, "7", "5", "1", "1", "7", "1", "1", "3", "7", "1", "1", "0", "11")
	assert.Equal(t, 3, strings.Count(out, "Invalid choice!"))
	assert.NotContains(t, out, "unknown sort algorithm")
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(c))

	out = run(t, catalog.New(catalog.Options{}), Options{}, "7", "1", "1", "1", "11")
	assert.Contains(t, out, "No recipes to sort!")
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "recipes.csv")
	out := run(t, fixture(t), Options{ExportPath: path}, "8", "11")
	assert.Contains(t, out, "Exported 4 recipes to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "name,category,price,cooking_time,ingredients,steps\n"))
}

func TestRate(t *testing.T) {
	c := fixture(t)
	out := run(t, c, Options{}, "9", "3", "4.5", "9", "3", "6", "9", "3", "great", "9", "3", "nan", "11")
	assert.Contains(t, out, "Rating saved: 4.5/5")
	assert.Equal(t, 2, strings.Count(out, "Rating must be between 0 and 5."))
	assert.NotContains(t, out, "NaN")
	assert.Contains(t, out, "Please enter a valid number.")

	r, err := c.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, r.Rating)

	out = run(t, catalog.New(catalog.Options{}), Options{}, "9", "11")
	assert.Contains(t, out, "No recipes available to rate.")
}

func TestPerformance(t *testing.T) {
	out := run(t, fixture(t), Options{BenchRuns: 3}, "10", "11")
	assert.Contains(t, out, "PERFORMANCE TEST")
	assert.Contains(t, out, "key cooking_time")
	assert.Contains(t, out, "O(n log n)")

	c := catalog.New(catalog.Options{})
	require.NoError(t, c.Add(recipe.New("only", recipe.CategoryMain, 1, 1, nil, nil)))
	out = run(t, c, Options{}, "10", "11")
	assert.Contains(t, out, "Not enough recipes")
}

func TestNumberedActionsListRecipesFirst(t *testing.T) {
	for _, choice := range []string{"2", "4", "5", "9"} {
		out := run(t, fixture(t), Options{}, choice)
		assert.Contains(t, out, "ALL RECIPES (4 total)", choice)
		assert.Contains(t, out, "4. D (dessert)", choice)

		out = run(t, catalog.New(catalog.Options{}), Options{}, choice, "11")
		assert.Contains(t, out, "No recipes available", choice)
		assert.Contains(t, out, "Thank you for using", choice)
	}
}
