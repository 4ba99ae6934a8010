package algorithms

// InsertionSort returns a sorted copy of in. It is stable and adaptive: an
// already sorted input costs a single pass.
func InsertionSort[T any](in []T, cmp func(a, b T) int) []T {
	out := clone(in)
	for i := 1; i < len(out); i++ {
		key := out[i]
		j := i - 1
		for j >= 0 && cmp(out[j], key) > 0 {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = key
	}
	return out
}

// SelectionSort returns a sorted copy of in. It always performs n²/2
// comparisons regardless of input order.
func SelectionSort[T any](in []T, cmp func(a, b T) int) []T {
	out := clone(in)
	for i := 0; i < len(out)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(out); j++ {
			if cmp(out[j], out[minIdx]) < 0 {
				minIdx = j
			}
		}
		if minIdx != i {
			out[i], out[minIdx] = out[minIdx], out[i]
		}
	}
	return out
}
