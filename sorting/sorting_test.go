package sorting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luktock/recipe-selection-system/recipe"
)

func scenario() []*recipe.Recipe {
	return []*recipe.Recipe{
		{Name: "A", Price: 12, CookingTime: 40},
		{Name: "B", Price: 8, CookingTime: 20},
		{Name: "C", Price: 8, CookingTime: 10},
		{Name: "D", Price: 5, CookingTime: 50},
	}
}

func names(rs []*recipe.Recipe) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

// permutations returns every ordering of 0..n-1 (Heap's algorithm).
func permutations(n int) [][]int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	var generate func(k int)
	generate = func(k int) {
		if k <= 1 {
			out = append(out, append([]int(nil), idx...))
			return
		}
		for i := 0; i < k-1; i++ {
			generate(k - 1)
			if k%2 == 0 {
				idx[i], idx[k-1] = idx[k-1], idx[i]
			} else {
				idx[0], idx[k-1] = idx[k-1], idx[0]
			}
		}
		generate(k - 1)
	}
	generate(n)
	return out
}

func TestScenarioUnfiltered(t *testing.T) {
	for _, algo := range Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			got, err := SortRecords(scenario(), recipe.KeyCookingTime, algo, false, nil)
			require.NoError(t, err)
			assert.Equal(t, []string{"C", "B", "A", "D"}, names(got))
		})
	}
}

func TestScenarioFiltered(t *testing.T) {
	for _, algo := range Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			matched, rest, err := PartitionAndSort(scenario(), recipe.KeyCookingTime, algo, recipe.DefaultEligibility)
			require.NoError(t, err)
			assert.Equal(t, []string{"C", "B"}, names(matched))
			assert.Equal(t, []string{"A", "D"}, names(rest))

			got, err := SortRecords(scenario(), recipe.KeyCookingTime, algo, true, recipe.DefaultEligibility)
			require.NoError(t, err)
			assert.Equal(t, []string{"C", "B", "A", "D"}, names(got))
		})
	}
}

func TestFilteredNilPredicateUsesDefault(t *testing.T) {
	got, err := SortRecords(scenario(), recipe.KeyPrice, Recursive, true, nil)
	require.NoError(t, err)
	// matched B, C tie on price and keep input order; rest D(5) before A(12).
	assert.Equal(t, []string{"B", "C", "D", "A"}, names(got))
}

func TestAlgorithmsAgreeOnEveryPermutation(t *testing.T) {
	base := []*recipe.Recipe{
		{Name: "r0", Price: 3, CookingTime: 30, Rating: 4},
		{Name: "r1", Price: 1, CookingTime: 30, Rating: 2},
		{Name: "r2", Price: 3, CookingTime: 10, Rating: 4},
		{Name: "r3", Price: 2, CookingTime: 20, Rating: 5},
		{Name: "r4", Price: 1, CookingTime: 10, Rating: 2},
		{Name: "r5", Price: 2, CookingTime: 30, Rating: 0},
	}

	for _, key := range recipe.Keys {
		for _, perm := range permutations(len(base)) {
			input := make([]*recipe.Recipe, len(base))
			for i, p := range perm {
				input[i] = base[p]
			}
			loop, err := Sort(input, key, Iterative)
			require.NoError(t, err)
			rec, err := Sort(input, key, Recursive)
			require.NoError(t, err)
			require.Equal(t, names(loop), names(rec), "key %s perm %v", key, perm)
		}
	}
}

func TestStability(t *testing.T) {
	input := []*recipe.Recipe{
		{Name: "first", CookingTime: 15},
		{Name: "x", CookingTime: 5},
		{Name: "second", CookingTime: 15},
		{Name: "y", CookingTime: 1},
		{Name: "third", CookingTime: 15},
	}
	for _, algo := range Algorithms {
		got, err := Sort(input, recipe.KeyCookingTime, algo)
		require.NoError(t, err)
		assert.Equal(t, []string{"y", "x", "first", "second", "third"}, names(got), algo.String())
	}
}

func TestIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	input := make([]*recipe.Recipe, 40)
	for i := range input {
		input[i] = &recipe.Recipe{Name: fmt.Sprintf("r%02d", i), Price: float64(rng.Intn(20))}
	}
	for _, algo := range Algorithms {
		once, err := Sort(input, recipe.KeyPrice, algo)
		require.NoError(t, err)
		twice, err := Sort(once, recipe.KeyPrice, algo)
		require.NoError(t, err)
		assert.Equal(t, names(once), names(twice))
	}
}

func TestInputNotModified(t *testing.T) {
	input := scenario()
	before := names(input)
	for _, algo := range Algorithms {
		got, err := Sort(input, recipe.KeyCookingTime, algo)
		require.NoError(t, err)
		assert.Equal(t, before, names(input))

		got[0] = nil
		assert.NotNil(t, input[0])
	}
}

func TestSingleElementReturnsCopy(t *testing.T) {
	input := []*recipe.Recipe{{Name: "only"}}
	for _, algo := range Algorithms {
		got, err := Sort(input, recipe.KeyName, algo)
		require.NoError(t, err)
		require.Len(t, got, 1)
		got[0] = nil
		assert.NotNil(t, input[0])
	}
}

func TestEmptyInput(t *testing.T) {
	calls := 0
	counting := func(*recipe.Recipe) bool {
		calls++
		return true
	}
	for _, algo := range Algorithms {
		got, err := SortRecords(nil, recipe.KeyRating, algo, false, nil)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		got, err = SortRecords([]*recipe.Recipe{}, recipe.KeyRating, algo, true, counting)
		require.NoError(t, err)
		assert.Empty(t, got)

		matched, rest, err := PartitionAndSort(nil, recipe.KeyPrice, algo, counting)
		require.NoError(t, err)
		assert.Empty(t, matched)
		assert.Empty(t, rest)
	}
	assert.Zero(t, calls)

	m, r := Partition(nil, counting)
	assert.Empty(t, m)
	assert.Empty(t, r)
}

func TestUnknownKey(t *testing.T) {
	input := scenario()
	before := names(input)

	_, err := SortRecords(input, recipe.Key(0), Iterative, false, nil)
	assert.ErrorIs(t, err, recipe.ErrUnknownKey)

	_, err = SortRecords(input, recipe.Key(17), Recursive, true, nil)
	assert.ErrorIs(t, err, recipe.ErrUnknownKey)

	_, err = SortRecords(nil, recipe.Key(17), Recursive, false, nil)
	assert.ErrorIs(t, err, recipe.ErrUnknownKey)

	assert.Equal(t, before, names(input))
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := Sort(scenario(), recipe.KeyPrice, Algorithm(9))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = ParseAlgorithm("quick")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	a, err := ParseAlgorithm("Merge")
	require.NoError(t, err)
	assert.Equal(t, Recursive, a)
}

func TestPartitionCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	input := make([]*recipe.Recipe, 100)
	for i := range input {
		input[i] = &recipe.Recipe{
			Name:        fmt.Sprintf("r%03d", i),
			Price:       float64(rng.Intn(25)),
			CookingTime: rng.Intn(90),
		}
	}

	for _, algo := range Algorithms {
		matched, rest, err := PartitionAndSort(input, recipe.KeyCookingTime, algo, recipe.DefaultEligibility)
		require.NoError(t, err)
		assert.Equal(t, len(input), len(matched)+len(rest))

		seen := make(map[*recipe.Recipe]int)
		for _, r := range matched {
			assert.True(t, recipe.DefaultEligibility(r))
			seen[r]++
		}
		for _, r := range rest {
			assert.False(t, recipe.DefaultEligibility(r))
			seen[r]++
		}
		for _, r := range input {
			assert.Equal(t, 1, seen[r], r.Name)
		}

		all, err := SortRecords(input, recipe.KeyCookingTime, algo, true, recipe.DefaultEligibility)
		require.NoError(t, err)
		require.Len(t, all, len(input))
		assert.Equal(t, names(matched), names(all[:len(matched)]))
		assert.Equal(t, names(rest), names(all[len(matched):]))
	}
}

func TestGenericSortsOnInts(t *testing.T) {
	compare := func(a, b int) int { return a - b }
	in := []int{5, 3, 9, 1, 3, 0}
	assert.Equal(t, []int{0, 1, 3, 3, 5, 9}, BubbleSort(in, compare))
	assert.Equal(t, []int{0, 1, 3, 3, 5, 9}, MergeSort(in, compare))
	assert.Equal(t, []int{5, 3, 9, 1, 3, 0}, in)
}

func TestAlgorithmLabels(t *testing.T) {
	assert.Equal(t, "Loop (Bubble Sort)", Iterative.Describe())
	assert.Equal(t, "O(n log n)", Recursive.Complexity())
	assert.Equal(t, "Algorithm(3)", Algorithm(3).String())
}

func benchmarkRecipes(n int) []*recipe.Recipe {
	rng := rand.New(rand.NewSource(42))
	out := make([]*recipe.Recipe, n)
	for i := range out {
		out[i] = &recipe.Recipe{CookingTime: rng.Intn(240)}
	}
	return out
}

func BenchmarkBubbleSort(b *testing.B) {
	data := benchmarkRecipes(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Sort(data, recipe.KeyCookingTime, Iterative)
	}
}

func BenchmarkMergeSort(b *testing.B) {
	data := benchmarkRecipes(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Sort(data, recipe.KeyCookingTime, Recursive)
	}
}
