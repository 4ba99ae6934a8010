package analysis

import (
	"slices"

	"sortbench/internal/benchmark"
	"sortbench/internal/generator"
)

// AdaptivityRatio compares an algorithm's Random and Sorted times at one size.
type AdaptivityRatio struct {
	Algorithm string
	Size      int
	Ratio     float64
}

// Adaptive reports whether the ratio exceeds AdaptiveThreshold.
func (a AdaptivityRatio) Adaptive() bool {
	return a.Ratio > AdaptiveThreshold
}

// Adaptivity returns Random time / Sorted time for algorithm at size. It
// reports false when either measurement is missing or the Sorted time is zero.
func Adaptivity(results []benchmark.Result, algorithm string, size int) (float64, bool) {
	random, okR := find(results, algorithm, size, generator.Random)
	sorted, okS := find(results, algorithm, size, generator.Sorted)
	if !okR || !okS || sorted.TimeSeconds == 0 {
		return 0, false
	}
	return random.TimeSeconds / sorted.TimeSeconds, true
}

// Adaptivities returns the ratio for every (algorithm, size) pair with both
// measurements at sizes of at least minSize, in first-appearance order.
func Adaptivities(results []benchmark.Result, minSize int) []AdaptivityRatio {
	type key struct {
		algorithm string
		size      int
	}
	seen := make(map[key]bool)
	var out []AdaptivityRatio
	for _, r := range results {
		if r.InputSize < minSize {
			continue
		}
		k := key{r.Algorithm, r.InputSize}
		if seen[k] {
			continue
		}
		seen[k] = true
		if ratio, ok := Adaptivity(results, r.Algorithm, r.InputSize); ok {
			out = append(out, AdaptivityRatio{Algorithm: r.Algorithm, Size: r.InputSize, Ratio: ratio})
		}
	}
	return out
}

// AdaptiveAlgorithms keeps only the ratios above AdaptiveThreshold.
func AdaptiveAlgorithms(results []benchmark.Result, minSize int) []AdaptivityRatio {
	return slices.DeleteFunc(Adaptivities(results, minSize), func(a AdaptivityRatio) bool {
		return !a.Adaptive()
	})
}

func find(results []benchmark.Result, algorithm string, size int, inputType generator.InputType) (benchmark.Result, bool) {
	for _, r := range results {
		if r.Algorithm == algorithm && r.InputSize == size && r.InputType == inputType {
			return r, true
		}
	}
	return benchmark.Result{}, false
}
