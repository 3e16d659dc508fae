// Package catalog holds the recipe collection of one session. The catalog owns
// its records exclusively; every operation that takes an index validates it and
// reports failure through the returned error.
//
// A Catalog is not safe for concurrent use.
package catalog

import (
	"errors"
	"fmt"

	"github.com/Luktock/recipe-selection-system/bloomfilter"
	"github.com/Luktock/recipe-selection-system/internal/logging"
	"github.com/Luktock/recipe-selection-system/internal/validation"
	"github.com/Luktock/recipe-selection-system/recipe"
	"github.com/Luktock/recipe-selection-system/sorting"
)

var (
	// ErrIndexOutOfRange is the sentinel behind every IndexError.
	ErrIndexOutOfRange = errors.New("invalid recipe number")
	// ErrInvalidRecipe wraps field validation failures.
	ErrInvalidRecipe = errors.New("invalid recipe")
)

// IndexError reports an index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %d (have %d recipes)", ErrIndexOutOfRange, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

const minIndexCapacity = 64

// Options tunes a Catalog.
type Options struct {
	// Eligibility is the filtered-sort predicate. Default: recipe.DefaultEligibility.
	Eligibility recipe.Predicate
	// FalsePositiveRate sizes the name index. Default: 0.01.
	FalsePositiveRate float64
}

// Catalog is an ordered, owned collection of recipes.
type Catalog struct {
	recipes     []*recipe.Recipe
	names       *bloomfilter.BloomFilter
	eligibility recipe.Predicate
	fpRate      float64
}

// New returns an empty catalog.
func New(opts Options) *Catalog {
	if opts.Eligibility == nil {
		opts.Eligibility = recipe.DefaultEligibility
	}
	if opts.FalsePositiveRate <= 0 || opts.FalsePositiveRate >= 1 {
		opts.FalsePositiveRate = 0.01
	}
	return &Catalog{
		names:       bloomfilter.New(minIndexCapacity, opts.FalsePositiveRate),
		eligibility: opts.Eligibility,
		fpRate:      opts.FalsePositiveRate,
	}
}

// Len returns the number of recipes.
func (c *Catalog) Len() int { return len(c.recipes) }

// Eligibility returns the predicate used by filtered sorts.
func (c *Catalog) Eligibility() recipe.Predicate { return c.eligibility }

// Add validates r and appends it. The catalog takes ownership of r.
func (c *Catalog) Add(r *recipe.Recipe) error {
	if r == nil {
		return fmt.Errorf("%w: nil recipe", ErrInvalidRecipe)
	}
	if err := validation.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}
	c.recipes = append(c.recipes, r)
	c.indexName(r.Name)
	return nil
}

// Get returns a copy of the recipe at index.
func (c *Catalog) Get(index int) (*recipe.Recipe, error) {
	if err := c.checkIndex(index); err != nil {
		return nil, err
	}
	return c.recipes[index].Clone(), nil
}

// List returns copies of all recipes in catalog order.
func (c *Catalog) List() []*recipe.Recipe {
	return cloneAll(c.recipes)
}

// Delete removes the recipe at index and returns it.
func (c *Catalog) Delete(index int) (*recipe.Recipe, error) {
	if err := c.checkIndex(index); err != nil {
		return nil, err
	}
	removed := c.recipes[index]
	c.recipes = append(c.recipes[:index], c.recipes[index+1:]...)
	c.rebuildIndex()
	return removed, nil
}

// Edit applies patch to the recipe at index. The edit is rejected as a whole
// when the patched recipe fails validation.
func (c *Catalog) Edit(index int, patch recipe.Patch) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	updated := c.recipes[index].Clone()
	patch.Apply(updated)
	if err := validation.Struct(updated); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}

	renamed := updated.Name != c.recipes[index].Name
	*c.recipes[index] = *updated
	if renamed {
		c.rebuildIndex()
	}
	return nil
}

// Rate sets the rating of the recipe at index; it must lie in [0, 5].
func (c *Catalog) Rate(index int, rating float64) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	return c.recipes[index].SetRating(rating)
}

// HasName reports whether some recipe is called exactly name.
func (c *Catalog) HasName(name string) bool {
	if !c.names.Contains(name) {
		return false
	}
	for _, r := range c.recipes {
		if r.Name == name {
			return true
		}
	}
	return false
}

// SortResult is the outcome of a catalog sort. Matched and Rest are only
// populated for filtered sorts; Recipes is always the full new order.
type SortResult struct {
	Key       recipe.Key
	Algorithm sorting.Algorithm
	Filtered  bool
	Recipes   []*recipe.Recipe
	Matched   []*recipe.Recipe
	Rest      []*recipe.Recipe
}

// Sort reorders the catalog by key and returns copies of the result. On any
// error the catalog order is left untouched.
func (c *Catalog) Sort(key recipe.Key, algo sorting.Algorithm, filtered bool) (*SortResult, error) {
	res := &SortResult{Key: key, Algorithm: algo, Filtered: filtered}

	if !filtered {
		sorted, err := sorting.Sort(c.recipes, key, algo)
		if err != nil {
			return nil, err
		}
		c.recipes = sorted
		res.Recipes = cloneAll(sorted)
		return res, nil
	}

	matched, rest, err := sorting.PartitionAndSort(c.recipes, key, algo, c.eligibility)
	if err != nil {
		return nil, err
	}
	c.recipes = sorting.Concat(matched, rest)
	res.Matched = cloneAll(matched)
	res.Rest = cloneAll(rest)
	res.Recipes = append(append([]*recipe.Recipe{}, res.Matched...), res.Rest...)
	return res, nil
}

// Recipes returns the recipes without copying, for read-only use such as
// export or benchmarking. Callers must not mutate the returned recipes.
func (c *Catalog) Recipes() []*recipe.Recipe {
	return append([]*recipe.Recipe{}, c.recipes...)
}

func (c *Catalog) checkIndex(index int) error {
	if index < 0 || index >= len(c.recipes) {
		return &IndexError{Index: index, Len: len(c.recipes)}
	}
	return nil
}

func (c *Catalog) indexName(name string) {
	c.names.Add(name)
	if c.names.Saturated() {
		c.rebuildIndex()
	}
}

// rebuildIndex refills the name index; bloom filters cannot forget, so deletes
// and renames rebuild too. The filter is resized to twice the catalog size
// only when the current one is too small.
func (c *Catalog) rebuildIndex() {
	capacity := max(uint64(2*len(c.recipes)), minIndexCapacity)
	if capacity > c.names.Capacity() || c.names.FalsePositiveRate() != c.fpRate {
		c.names = bloomfilter.New(capacity, c.fpRate)
	} else {
		c.names.Reset()
	}
	for _, r := range c.recipes {
		c.names.Add(r.Name)
	}

	setBits, fill, fpr := c.names.Stats()
	logging.Debug().
		Uint64("names", c.names.Len()).
		Uint64("capacity", c.names.Capacity()).
		Uint64("set_bits", setBits).
		Float64("fill_ratio", fill).
		Float64("estimated_fpr", fpr).
		Msg("Rebuilt name index")
}

func cloneAll(rs []*recipe.Recipe) []*recipe.Recipe {
	out := make([]*recipe.Recipe, len(rs))
	for i, r := range rs {
		out[i] = r.Clone()
	}
	return out
}
