package algorithms

// MergeSort returns a sorted copy of in using top-down merge sort. Equal
// elements keep their relative order.
func MergeSort[T any](in []T, cmp func(a, b T) int) []T {
	out := clone(in)
	if len(out) <= 1 {
		return out
	}
	buf := make([]T, len(out))
	mergeSort(out, buf, cmp)
	return out
}

func mergeSort[T any](s, buf []T, cmp func(a, b T) int) {
	if len(s) <= 1 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], cmp)
	mergeSort(s[mid:], buf[mid:], cmp)
	merge(s, mid, buf, cmp)
}

// merge combines the sorted halves s[:mid] and s[mid:] in place, using buf as
// scratch space of the same length.
func merge[T any](s []T, mid int, buf []T, cmp func(a, b T) int) {
	copy(buf, s)
	left, right := buf[:mid], buf[mid:len(s)]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// <= keeps the left element first on ties
		if cmp(left[i], right[j]) <= 0 {
			s[k] = left[i]
			i++
		} else {
			s[k] = right[j]
			j++
		}
		k++
	}
	k += copy(s[k:], left[i:])
	copy(s[k:], right[j:])
}
