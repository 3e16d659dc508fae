// Package csvio reads and writes the recipe CSV exchange format:
//
//	name,category,price,cooking_time,ingredients,steps
//
// List columns are joined with ';'. Ratings are not part of the format.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Luktock/recipe-selection-system/catalog"
	"github.com/Luktock/recipe-selection-system/internal/logging"
	"github.com/Luktock/recipe-selection-system/internal/validation"
	"github.com/Luktock/recipe-selection-system/recipe"
)

// Columns is the header, in order.
var Columns = []string{"name", "category", "price", "cooking_time", "ingredients", "steps"}

const listSeparator = ";"

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// RowError describes a skipped data row. Row is the 1-based line on which the
// record starts; the header is line 1.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("invalid data in row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// Read parses every well-formed row. Malformed rows are skipped and reported;
// only an unreadable stream or a bad header fails the whole read.
func Read(r io.Reader) ([]*recipe.Recipe, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, nil, err
	}

	var (
		recipes []*recipe.Recipe
		skipped []RowError
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				skipped = append(skipped, RowError{Row: perr.StartLine, Err: err})
				continue
			}
			return recipes, skipped, fmt.Errorf("failed to read CSV: %w", err)
		}

		line, _ := cr.FieldPos(0)
		rec, err := parseRecord(record, index)
		if err != nil {
			skipped = append(skipped, RowError{Row: line, Err: err})
			continue
		}
		recipes = append(recipes, rec)
	}

	return recipes, skipped, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		index[h] = i
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return index, nil
}

func parseRecord(record []string, index map[string]int) (*recipe.Recipe, error) {
	field := func(col string) (string, error) {
		i := index[col]
		if i >= len(record) {
			return "", fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
		return strings.TrimSpace(record[i]), nil
	}

	values := make(map[string]string, len(Columns))
	for _, col := range Columns {
		v, err := field(col)
		if err != nil {
			return nil, err
		}
		values[col] = v
	}

	price, err := recipe.ParsePrice(values["price"])
	if err != nil {
		return nil, err
	}
	cookingTime, err := strconv.Atoi(values["cooking_time"])
	if err != nil {
		return nil, fmt.Errorf("cooking_time %q: %w", values["cooking_time"], err)
	}

	rec := recipe.New(
		values["name"],
		values["category"],
		price,
		cookingTime,
		splitList(values["ingredients"]),
		splitList(values["steps"]),
	)
	if err := validation.Struct(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, listSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Write emits the header and one row per recipe.
func Write(w io.Writer, recipes []*recipe.Recipe) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range recipes {
		row := []string{
			r.Name,
			r.Category,
			strconv.FormatFloat(r.Price, 'f', -1, 64),
			strconv.Itoa(r.CookingTime),
			strings.Join(r.Ingredients, listSeparator),
			strings.Join(r.Steps, listSeparator),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadFile reads path into c, logging every skipped row. It returns the
// number of recipes added. A missing file yields an error wrapping os.ErrNotExist.
func LoadFile(path string, c *catalog.Catalog) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	log := logging.With().Str("component", "csv").Str("file", path).Logger()
	recipes, skipped, err := Read(f)
	for _, s := range skipped {
		log.Warn().Int("row", s.Row).Err(s.Err).Msg("skipping invalid CSV row")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", path, err)
	}

	added := 0
	for _, r := range recipes {
		if err := c.Add(r); err != nil {
			log.Warn().Str("recipe", r.Name).Err(err).Msg("skipping recipe")
			continue
		}
		added++
	}
	log.Debug().Int("loaded", added).Int("skipped", len(skipped)).Msg("CSV loaded")
	return added, nil
}

// SaveFile writes recipes to path, creating parent directories as needed.
func SaveFile(path string, recipes []*recipe.Recipe) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, recipes); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
