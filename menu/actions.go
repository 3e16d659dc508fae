package menu

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Luktock/recipe-selection-system/bench"
	"github.com/Luktock/recipe-selection-system/csvio"
	"github.com/Luktock/recipe-selection-system/internal/logging"
	"github.com/Luktock/recipe-selection-system/recipe"
	"github.com/Luktock/recipe-selection-system/sorting"
)

var sortKeys = map[string]recipe.Key{
	"1": recipe.KeyPrice,
	"2": recipe.KeyCookingTime,
	"3": recipe.KeyRating,
}

func (m *Menu) viewAll() error {
	recipes := m.catalog.List()
	if len(recipes) == 0 {
		m.println("\nNo recipes available yet!")
		return nil
	}
	m.header(fmt.Sprintf("ALL RECIPES (%d total)", len(recipes)))
	m.listRecipes(recipes, 1)
	m.println(rule)
	return nil
}

// pickRecipe lists the catalog and reads a recipe number. ok is false when the
// catalog is empty or the answer was not a number.
func (m *Menu) pickRecipe(prompt string) (index int, ok bool, err error) {
	if m.catalog.Len() == 0 {
		m.println("\nNo recipes available yet!")
		return 0, false, nil
	}
	if err := m.viewAll(); err != nil {
		return 0, false, err
	}
	return m.askIndex(prompt)
}

func (m *Menu) viewDetails() error {
	index, ok, err := m.pickRecipe("Enter recipe number to view details: ")
	if err != nil || !ok {
		return err
	}
	r, err := m.catalog.Get(index)
	if err != nil {
		m.fail(err)
		return nil
	}
	m.showRecipe(r)
	return nil
}

func (m *Menu) add() error {
	m.header("ADD NEW RECIPE")
	name, err := m.ask("Recipe Name: ")
	if err != nil {
		return err
	}
	category, err := m.ask("Category (soup/starter/main/dessert): ")
	if err != nil {
		return err
	}
	priceText, err := m.ask("Estimated Price ($): ")
	if err != nil {
		return err
	}
	timeText, err := m.ask("Cooking Time (minutes): ")
	if err != nil {
		return err
	}
	price, perr := recipe.ParsePrice(priceText)
	minutes, terr := strconv.Atoi(timeText)
	if perr != nil || terr != nil {
		m.println("Invalid price or time! Recipe not added.")
		return nil
	}

	m.println("\nEnter ingredients (one per line, type 'done' when finished):")
	ingredients, err := m.askList(func(int) string { return "- " })
	if err != nil {
		return err
	}
	m.println("\nEnter cooking steps (one per line, type 'done' when finished):")
	steps, err := m.askList(func(n int) string { return fmt.Sprintf("%d. ", n) })
	if err != nil {
		return err
	}

	if m.catalog.HasName(name) {
		m.printf("Note: a recipe named %q already exists.\n", name)
	}
	if err := m.catalog.Add(recipe.New(name, category, price, minutes, ingredients, steps)); err != nil {
		m.fail(err)
		return nil
	}
	logging.Info().Str("name", name).Int("recipes", m.catalog.Len()).Msg("Recipe added")
	m.printf("Recipe %q added successfully!\n", name)
	return nil
}

func (m *Menu) edit() error {
	index, ok, err := m.pickRecipe("Enter recipe number to edit: ")
	if err != nil || !ok {
		return err
	}
	current, err := m.catalog.Get(index)
	if err != nil {
		m.fail(err)
		return nil
	}

	m.header("EDITING: " + current.Name)
	m.println("(Press Enter to keep current value)")
	var patch recipe.Patch

	name, err := m.ask(fmt.Sprintf("Name [%s]: ", current.Name))
	if err != nil {
		return err
	}
	if name != "" {
		patch.Name = &name
	}
	category, err := m.ask(fmt.Sprintf("Category [%s]: ", current.Category))
	if err != nil {
		return err
	}
	if category != "" {
		patch.Category = &category
	}
	priceText, err := m.ask(fmt.Sprintf("Price [%g]: ", current.Price))
	if err != nil {
		return err
	}
	if priceText != "" {
		if price, err := recipe.ParsePrice(priceText); err == nil {
			patch.Price = &price
		} else {
			m.println("Invalid price, keeping original")
		}
	}
	timeText, err := m.ask(fmt.Sprintf("Cooking Time [%d]: ", current.CookingTime))
	if err != nil {
		return err
	}
	if timeText != "" {
		if minutes, err := strconv.Atoi(timeText); err == nil {
			patch.CookingTime = &minutes
		} else {
			m.println("Invalid time, keeping original")
		}
	}

	yes, err := m.confirm("\nEdit ingredients? (y/n): ")
	if err != nil {
		return err
	}
	if yes {
		m.println("Enter new ingredients (one per line, type 'done' when finished):")
		if patch.Ingredients, err = m.askList(func(int) string { return "- " }); err != nil {
			return err
		}
	}
	yes, err = m.confirm("Edit cooking steps? (y/n): ")
	if err != nil {
		return err
	}
	if yes {
		m.println("Enter new steps (one per line, type 'done' when finished):")
		if patch.Steps, err = m.askList(func(n int) string { return fmt.Sprintf("%d. ", n) }); err != nil {
			return err
		}
	}

	if err := m.catalog.Edit(index, patch); err != nil {
		m.fail(err)
		return nil
	}
	m.println("Recipe updated successfully!")
	return nil
}

func (m *Menu) delete() error {
	index, ok, err := m.pickRecipe("Enter recipe number to delete: ")
	if err != nil || !ok {
		return err
	}
	removed, err := m.catalog.Delete(index)
	if err != nil {
		m.fail(err)
		return nil
	}
	logging.Info().Str("name", removed.Name).Int("recipes", m.catalog.Len()).Msg("Recipe deleted")
	m.printf("Recipe %q deleted.\n", removed.Name)
	return nil
}

func (m *Menu) search() error {
	m.println("\nSearch options:")
	m.println("1. By name")
	m.println("2. By category")
	m.println("3. By ingredient")
	m.println("4. Ingredient include X but NOT Y")
	choice, err := m.ask("Choose (1-4): ")
	if err != nil {
		return err
	}

	var results []*recipe.Recipe
	switch choice {
	case "1":
		term, err := m.ask("Enter name keyword: ")
		if err != nil {
			return err
		}
		results = m.catalog.SearchByName(term)
	case "2":
		m.println("\nAvailable categories: soup, starter, main, dessert")
		category, err := m.ask("Enter category: ")
		if err != nil {
			return err
		}
		results = m.catalog.SearchByCategory(category)
		if len(results) > 0 {
			m.header("RECIPES IN CATEGORY: " + upper.String(category))
		}
	case "3":
		term, err := m.ask("Enter ingredient keyword: ")
		if err != nil {
			return err
		}
		results = m.catalog.SearchByIngredient(term, "")
	case "4":
		include, err := m.ask("Include ingredient keyword: ")
		if err != nil {
			return err
		}
		exclude, err := m.ask("Exclude ingredient keyword: ")
		if err != nil {
			return err
		}
		results = m.catalog.SearchByIngredient(include, exclude)
	default:
		m.println("Invalid search choice.")
		return nil
	}

	if len(results) == 0 {
		m.println("No recipes found.")
		return nil
	}
	m.println("\nResults:")
	for _, r := range results {
		m.printf("- %s\n", m.summary(r))
	}
	return nil
}

func (m *Menu) sort() error {
	m.println("\nSort by:")
	m.println("1. Price")
	m.println("2. Cooking Time")
	m.println("3. Rating")
	keyChoice, err := m.ask("Enter choice (1-3): ")
	if err != nil {
		return err
	}
	m.println("\nUse logical filter? (Cheap AND Quick recipes first)")
	m.printf("Filter: %s\n", m.opts.FilterLabel)
	m.println("1. Yes (with filter)")
	m.println("2. No (regular sort)")
	filterChoice, err := m.ask("Enter choice (1-2): ")
	if err != nil {
		return err
	}
	m.println("\nSorting method:")
	for i, algo := range sorting.Algorithms {
		m.printf("%d. %s\n", i+1, algo.Describe())
	}
	algoChoice, err := m.ask("Enter choice (1-2): ")
	if err != nil {
		return err
	}

	key, ok := sortKeys[keyChoice]
	n, aerr := strconv.Atoi(algoChoice)
	if !ok || aerr != nil || n < 1 || n > len(sorting.Algorithms) || (filterChoice != "1" && filterChoice != "2") {
		m.println("Invalid choice!")
		return nil
	}
	if m.catalog.Len() == 0 {
		m.println("\nNo recipes to sort!")
		return nil
	}

	algo := sorting.Algorithms[n-1]
	res, err := m.catalog.Sort(key, algo, filterChoice == "1")
	if err != nil {
		m.fail(err)
		return nil
	}

	if !res.Filtered {
		m.header(fmt.Sprintf("SORTED BY %s - Using %s", title(key), algo.Describe()))
		m.listSorted(key, res.Recipes, 1)
		m.println(rule)
		return nil
	}

	m.header(fmt.Sprintf("SORTED BY %s WITH LOGICAL FILTER\nUsing %s\nFilter: %s recipes first",
		title(key), algo.Describe(), m.opts.FilterLabel))
	if len(res.Matched) > 0 {
		m.println("\nMatches filter:")
		m.listSorted(key, res.Matched, 1)
	}
	if len(res.Rest) > 0 {
		m.println("\nDoes not match filter:")
		m.listSorted(key, res.Rest, len(res.Matched)+1)
	}
	m.println(rule)
	return nil
}

func (m *Menu) export() error {
	recipes := m.catalog.Recipes()
	if err := csvio.SaveFile(m.opts.ExportPath, recipes); err != nil {
		logging.Error().Err(err).Str("path", m.opts.ExportPath).Msg("Export failed")
		m.printf("Export failed: %v\n", err)
		return nil
	}
	logging.Info().Str("path", m.opts.ExportPath).Int("recipes", len(recipes)).Msg("Recipes exported")
	m.printf("Exported %d recipes to %s\n", len(recipes), m.opts.ExportPath)
	return nil
}

func (m *Menu) rate() error {
	if m.catalog.Len() == 0 {
		m.println("No recipes available to rate.")
		return nil
	}
	index, ok, err := m.pickRecipe("Enter recipe number to rate: ")
	if err != nil || !ok {
		return err
	}
	answer, err := m.ask("Enter rating (0-5): ")
	if err != nil {
		return err
	}
	rating, perr := strconv.ParseFloat(answer, 64)
	if perr != nil {
		m.println("Please enter a valid number.")
		return nil
	}

	switch err := m.catalog.Rate(index, rating); {
	case errors.Is(err, recipe.ErrInvalidRating):
		m.println("Rating must be between 0 and 5.")
	case err != nil:
		m.fail(err)
	default:
		m.printf("Rating saved: %.1f/5\n", rating)
	}
	return nil
}

func (m *Menu) performance() error {
	if m.catalog.Len() < 2 {
		m.println("Not enough recipes to run performance test.")
		return nil
	}
	report, err := bench.Run(m.catalog.Recipes(), m.opts.BenchKey, m.opts.BenchRuns)
	if err != nil {
		m.fail(err)
		return nil
	}
	m.header("PERFORMANCE TEST")
	return bench.WriteText(m.out, report)
}
