// Package menu is the interactive front end of the recipe catalog. It reads
// choices from a Prompter and writes plain text to an io.Writer, so the whole
// dialogue can be driven from tests.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Luktock/recipe-selection-system/bench"
	"github.com/Luktock/recipe-selection-system/catalog"
	"github.com/Luktock/recipe-selection-system/internal/logging"
	"github.com/Luktock/recipe-selection-system/recipe"
)

const rule = "=================================================="

// Options configures a Menu.
type Options struct {
	// ExportPath is where option 8 writes the CSV export.
	ExportPath string
	// BenchRuns and BenchKey drive the performance test.
	BenchRuns int
	BenchKey  recipe.Key
	// FilterLabel describes the catalog eligibility predicate in sort output.
	FilterLabel string
}

// Menu runs the numbered menu loop over one catalog.
type Menu struct {
	catalog *catalog.Catalog
	in      Prompter
	out     io.Writer
	opts    Options
	printer *message.Printer
	actions map[string]func() error
}

// New returns a menu over c.
func New(c *catalog.Catalog, in Prompter, out io.Writer, opts Options) *Menu {
	if opts.BenchRuns <= 0 {
		opts.BenchRuns = bench.DefaultRuns
	}
	if !opts.BenchKey.Valid() {
		opts.BenchKey = recipe.KeyCookingTime
	}
	if opts.FilterLabel == "" {
		opts.FilterLabel = fmt.Sprintf("Cheap (<= $%g) AND Quick (<= %d min)", recipe.DefaultMaxPrice, recipe.DefaultMaxCookingTime)
	}

	m := &Menu{
		catalog: c,
		in:      in,
		out:     out,
		opts:    opts,
		printer: message.NewPrinter(language.English),
	}
	m.actions = map[string]func() error{
		"1":  m.viewAll,
		"2":  m.viewDetails,
		"3":  m.add,
		"4":  m.edit,
		"5":  m.delete,
		"6":  m.search,
		"7":  m.sort,
		"8":  m.export,
		"9":  m.rate,
		"10": m.performance,
	}
	return m
}

// Run shows the menu until the user exits or input ends. It returns an error
// only when reading input fails for a reason other than end of input.
func (m *Menu) Run() error {
	for {
		m.showMenu()
		choice, err := m.ask("Enter your choice (1-11): ")
		if err == nil {
			if choice == "11" {
				m.println("\nThank you for using the Recipe Selection System!")
				return nil
			}
			action, ok := m.actions[choice]
			if !ok {
				m.println("\nInvalid choice! Please enter 1-11.")
				continue
			}
			err = action()
		}

		switch {
		case err == nil:
		case errors.Is(err, ErrAborted):
			m.println("^C")
		case errors.Is(err, io.EOF):
			m.println("\nGoodbye!")
			return nil
		default:
			return err
		}
	}
}

func (m *Menu) showMenu() {
	m.println("\n" + rule)
	m.println("     INTELLIGENT RECIPE SELECTION SYSTEM")
	m.println(rule)
	for i, item := range []string{
		"View All Recipes",
		"View Recipe Details",
		"Add New Recipe",
		"Edit Recipe",
		"Delete Recipe",
		"Search recipes (name / category / ingredient)",
		"Sort Recipes",
		"Export recipes to CSV",
		"Rate a recipe",
		"Performance test",
		"Exit",
	} {
		m.printf("%d. %s\n", i+1, item)
	}
	m.println(rule)
}

// ask prompts and returns the trimmed answer.
func (m *Menu) ask(prompt string) (string, error) {
	line, err := m.in.Prompt(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askIndex reads a 1-based recipe number and returns it 0-based. ok is false
// when the answer was not a number; the user has been told already.
func (m *Menu) askIndex(prompt string) (index int, ok bool, err error) {
	answer, err := m.ask(prompt)
	if err != nil {
		return 0, false, err
	}
	n, perr := strconv.Atoi(answer)
	if perr != nil {
		m.println("Please enter a valid number!")
		return 0, false, nil
	}
	return n - 1, true, nil
}

// askList reads items one per line until "done". Blank lines are skipped.
func (m *Menu) askList(prompt func(n int) string) ([]string, error) {
	var items []string
	for {
		line, err := m.ask(prompt(len(items) + 1))
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(line, "done") {
			return items, nil
		}
		if line != "" {
			items = append(items, line)
		}
	}
}

func (m *Menu) confirm(prompt string) (bool, error) {
	answer, err := m.ask(prompt)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

func (m *Menu) fail(err error) {
	logging.Debug().Err(err).Msg("Menu operation failed")
	m.printf("Error: %v\n", err)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
