package sorting

// MergeSort returns a stably sorted sequence built by splitting items at the
// midpoint, sorting each half recursively and merging. items is never written;
// sequences of length <= 1 are returned as given.
func MergeSort[T any](items []T, compare func(a, b T) int) []T {
	if len(items) <= 1 {
		return items
	}

	mid := len(items) / 2
	left := MergeSort(items[:mid], compare)
	right := MergeSort(items[mid:], compare)

	return merge(left, right, compare)
}

// merge takes the lesser-or-equal head each step; ties go to left.
func merge[T any](left, right []T, compare func(a, b T) int) []T {
	result := make([]T, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) <= 0 {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}

	if i < len(left) {
		result = append(result, left[i:]...)
	}
	if j < len(right) {
		result = append(result, right[j:]...)
	}

	return result
}
