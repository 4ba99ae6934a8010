// Package algorithms holds the sorting routines under test and the fixed
// registry the benchmark iterates over.
package algorithms

import "cmp"

// Complexity is the worst-case growth class of an algorithm.
type Complexity int

const (
	LogLinear Complexity = iota
	Quadratic
)

func (c Complexity) String() string {
	switch c {
	case LogLinear:
		return "O(n log n)"
	case Quadratic:
		return "O(n²)"
	default:
		return "unknown"
	}
}

// Entry pairs a display name with a sort capability.
type Entry struct {
	Name       string
	Complexity Complexity
	Stable     bool
	Sort       func([]int) []int
}

var registry = []Entry{
	{Name: "Insertion Sort", Complexity: Quadratic, Stable: true, Sort: Ordered[int](InsertionSort[int])},
	{Name: "Selection Sort", Complexity: Quadratic, Stable: false, Sort: Ordered[int](SelectionSort[int])},
	{Name: "Merge Sort", Complexity: LogLinear, Stable: true, Sort: Ordered[int](MergeSort[int])},
	{Name: "Quick Sort", Complexity: LogLinear, Stable: false, Sort: Ordered[int](QuickSort[int])},
	{Name: "Heap Sort", Complexity: LogLinear, Stable: false, Sort: Ordered[int](HeapSort[int])},
}

// Registry returns the algorithms in benchmark order. The returned slice is a
// copy; callers may reorder it freely.
func Registry() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a registry entry by its display name.
func Lookup(name string) (Entry, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Ordered adapts a comparator-based sort to an ordered element type using cmp.Compare.
func Ordered[T cmp.Ordered](sortFn func([]T, func(a, b T) int) []T) func([]T) []T {
	return func(in []T) []T {
		return sortFn(in, cmp.Compare[T])
	}
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
