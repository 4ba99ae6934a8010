package algorithms

// QuickSort returns a sorted copy of in. The pivot is the median of the first,
// middle and last elements and partitioning is three-way, so runs of equal
// keys are settled in one pass.
func QuickSort[T any](in []T, cmp func(a, b T) int) []T {
	out := clone(in)
	quickSort(out, cmp)
	return out
}

func quickSort[T any](s []T, cmp func(a, b T) int) {
	for len(s) > 1 {
		pivot := medianOfThree(s[0], s[len(s)/2], s[len(s)-1], cmp)
		lt, gt := partition3(s, pivot, cmp)
		// Recurse into the smaller side and loop on the larger one to keep the
		// stack logarithmic.
		if lt < len(s)-gt {
			quickSort(s[:lt], cmp)
			s = s[gt:]
		} else {
			quickSort(s[gt:], cmp)
			s = s[:lt]
		}
	}
}

// partition3 rearranges s into [< pivot | == pivot | > pivot] and returns the
// bounds of the middle band.
func partition3[T any](s []T, pivot T, cmp func(a, b T) int) (lt, gt int) {
	lt, i, gt := 0, 0, len(s)
	for i < gt {
		switch c := cmp(s[i], pivot); {
		case c < 0:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case c > 0:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}
	return lt, gt
}

func medianOfThree[T any](a, b, c T, cmp func(a, b T) int) T {
	if cmp(a, b) > 0 {
		a, b = b, a
	}
	if cmp(b, c) > 0 {
		b = c
		if cmp(a, b) > 0 {
			b = a
		}
	}
	return b
}
