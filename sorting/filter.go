package sorting

import "github.com/Luktock/recipe-selection-system/recipe"

// Partition splits recipes into those matching predicate and the rest,
// preserving input order within each group. Both results are non-nil.
func Partition(recipes []*recipe.Recipe, predicate recipe.Predicate) (matched, rest []*recipe.Recipe) {
	matched = make([]*recipe.Recipe, 0, len(recipes))
	rest = make([]*recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if predicate(r) {
			matched = append(matched, r)
		} else {
			rest = append(rest, r)
		}
	}
	return matched, rest
}

// PartitionAndSort partitions recipes with predicate and sorts each group
// independently. The boundary of the concatenated result is len(matched).
// A nil predicate means recipe.DefaultEligibility.
func PartitionAndSort(recipes []*recipe.Recipe, key recipe.Key, algo Algorithm, predicate recipe.Predicate) (matched, rest []*recipe.Recipe, err error) {
	compare, err := resolve(key, algo)
	if err != nil {
		return nil, nil, err
	}
	if len(recipes) == 0 {
		return []*recipe.Recipe{}, []*recipe.Recipe{}, nil
	}
	if predicate == nil {
		predicate = recipe.DefaultEligibility
	}

	matched, rest = Partition(recipes, predicate)
	if matched, err = algo.sortWith(matched, compare); err != nil {
		return nil, nil, err
	}
	if rest, err = algo.sortWith(rest, compare); err != nil {
		return nil, nil, err
	}
	return matched, rest, nil
}

// Concat returns matched followed by rest in a new slice.
func Concat(matched, rest []*recipe.Recipe) []*recipe.Recipe {
	out := make([]*recipe.Recipe, 0, len(matched)+len(rest))
	out = append(out, matched...)
	return append(out, rest...)
}
