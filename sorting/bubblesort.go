package sorting

// BubbleSort returns a sorted copy of items using adjacent exchange passes.
// After pass i the last i elements are final. Swaps happen only on a strict
// greater-than, so equal elements keep their input order. A pass without
// swaps ends the sort early.
func BubbleSort[T any](items []T, compare func(a, b T) int) []T {
	result := make([]T, len(items))
	copy(result, items)

	n := len(result)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if compare(result[j], result[j+1]) > 0 {
				result[j], result[j+1] = result[j+1], result[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return result
}
