// Package sorting orders recipes by a single attribute with one of two
// algorithms, optionally grouping the recipes that satisfy a predicate first.
//
// Both algorithms are stable and return a new slice; the input slice is never
// reordered. The recipes themselves are shared with the input, not copied.
package sorting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Luktock/recipe-selection-system/recipe"
)

// ErrUnknownAlgorithm is returned for an Algorithm outside the closed set.
var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// Algorithm selects a sort strategy.
type Algorithm int

const (
	// Iterative is the exchange (bubble) sort, O(n^2).
	Iterative Algorithm = iota + 1
	// Recursive is the divide-and-conquer merge sort, O(n log n).
	Recursive
)

// Algorithms lists both strategies in menu order.
var Algorithms = []Algorithm{Iterative, Recursive}

func (a Algorithm) String() string {
	switch a {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Describe returns a human label such as "Loop (Bubble Sort)".
func (a Algorithm) Describe() string {
	switch a {
	case Iterative:
		return "Loop (Bubble Sort)"
	case Recursive:
		return "Recursion (Merge Sort)"
	default:
		return a.String()
	}
}

// Complexity returns the comparison bound in Big-O notation.
func (a Algorithm) Complexity() string {
	switch a {
	case Iterative:
		return "O(n^2)"
	case Recursive:
		return "O(n log n)"
	default:
		return "unknown"
	}
}

// ParseAlgorithm accepts "iterative"/"loop"/"bubble" or "recursive"/"recursion"/"merge".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "iterative", "loop", "bubble":
		return Iterative, nil
	case "recursive", "recursion", "merge":
		return Recursive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Sort orders recipes ascending by key with the chosen algorithm.
func (a Algorithm) Sort(recipes []*recipe.Recipe, key recipe.Key) ([]*recipe.Recipe, error) {
	compare, err := key.Comparator()
	if err != nil {
		return nil, err
	}
	return a.sortWith(recipes, compare)
}

func (a Algorithm) sortWith(recipes []*recipe.Recipe, compare recipe.Compare) ([]*recipe.Recipe, error) {
	switch a {
	case Iterative:
		return BubbleSort(recipes, compare), nil
	case Recursive:
		if len(recipes) <= 1 {
			return append([]*recipe.Recipe{}, recipes...), nil
		}
		return MergeSort(recipes, compare), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}
}

// SortRecords is the primary entry point. Without a filter the whole collection
// is sorted directly; with one, recipes matching predicate come first, each group
// sorted on its own. A nil predicate means recipe.DefaultEligibility.
//
// An unknown key fails before anything else. An empty collection yields an
// empty slice without calling the predicate or any comparison.
func SortRecords(recipes []*recipe.Recipe, key recipe.Key, algo Algorithm, filtered bool, predicate recipe.Predicate) ([]*recipe.Recipe, error) {
	if !filtered {
		return Sort(recipes, key, algo)
	}

	matched, rest, err := PartitionAndSort(recipes, key, algo, predicate)
	if err != nil {
		return nil, err
	}
	return Concat(matched, rest), nil
}

// Sort orders the whole collection with no filter.
func Sort(recipes []*recipe.Recipe, key recipe.Key, algo Algorithm) ([]*recipe.Recipe, error) {
	compare, err := resolve(key, algo)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return []*recipe.Recipe{}, nil
	}
	return algo.sortWith(recipes, compare)
}

func resolve(key recipe.Key, algo Algorithm) (recipe.Compare, error) {
	compare, err := key.Comparator()
	if err != nil {
		return nil, err
	}
	if algo != Iterative && algo != Recursive {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algo)
	}
	return compare, nil
}
