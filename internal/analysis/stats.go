package analysis

import (
	"slices"
	"strings"

	"sortbench/internal/benchmark"
)

// AlgorithmStats summarises every result of one algorithm.
type AlgorithmStats struct {
	Algorithm string
	Mean      float64
	Min       float64
	Max       float64
	Count     int
}

// Statistics returns per-algorithm mean, min and max ordered by name.
func Statistics(results []benchmark.Result) []AlgorithmStats {
	byName := make(map[string]*AlgorithmStats)
	for _, r := range results {
		s, ok := byName[r.Algorithm]
		if !ok {
			s = &AlgorithmStats{Algorithm: r.Algorithm, Min: r.TimeSeconds, Max: r.TimeSeconds}
			byName[r.Algorithm] = s
		}
		s.Mean += r.TimeSeconds
		s.Count++
		s.Min = min(s.Min, r.TimeSeconds)
		s.Max = max(s.Max, r.TimeSeconds)
	}

	out := make([]AlgorithmStats, 0, len(byName))
	for _, s := range byName {
		s.Mean /= float64(s.Count)
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b AlgorithmStats) int {
		return strings.Compare(a.Algorithm, b.Algorithm)
	})
	return out
}
