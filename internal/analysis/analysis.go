// Package analysis derives comparative statistics from a benchmark result
// list. Every function is a read-only fold; a query with no matching results
// reports ok == false or returns an empty slice.
package analysis

import (
	"slices"

	"sortbench/internal/benchmark"
	"sortbench/internal/generator"
)

const (
	// AdaptiveThreshold is the Random/Sorted time ratio above which an
	// algorithm is reported as adaptive.
	AdaptiveThreshold = 2.0

	// LargeInputSize is the lower bound for the "large random input" averages.
	LargeInputSize = 10_000

	// CaseInputSize is the lower bound for winner, best-case, worst-case and
	// adaptivity queries.
	CaseInputSize = 1_000

	// RankingLimit is how many algorithms the best/worst-case rankings keep.
	RankingLimit = 3
)

// Filter selects results for an aggregate query.
type Filter func(benchmark.Result) bool

// InputTypeAtLeast matches results of one input type at or above minSize.
func InputTypeAtLeast(inputType generator.InputType, minSize int) Filter {
	return func(r benchmark.Result) bool {
		return r.InputType == inputType && r.InputSize >= minSize
	}
}

// Winner is the fastest result of a scenario.
type Winner struct {
	Scenario benchmark.Scenario
	Result   benchmark.Result
}

// Winners returns the fastest result for every (input type, size) scenario,
// ordered by input type name then size. On equal times the result seen first
// wins, which is registry order for orchestrator output.
func Winners(results []benchmark.Result) []Winner {
	best := make(map[benchmark.Scenario]benchmark.Result)
	var order []benchmark.Scenario
	for _, r := range results {
		key := r.Scenario()
		cur, ok := best[key]
		if !ok {
			order = append(order, key)
			best[key] = r
			continue
		}
		if r.TimeSeconds < cur.TimeSeconds {
			best[key] = r
		}
	}

	slices.SortFunc(order, compareScenarios)

	winners := make([]Winner, 0, len(order))
	for _, key := range order {
		winners = append(winners, Winner{Scenario: key, Result: best[key]})
	}
	return winners
}

// AlgorithmAverage is the mean time of one algorithm over a filtered subset.
type AlgorithmAverage struct {
	Algorithm string
	Mean      float64
	Count     int
}

// Averages groups the matching results by algorithm and returns their mean
// times in ascending order. Algorithms with equal means keep the order in
// which they first appear.
func Averages(results []benchmark.Result, filter Filter) []AlgorithmAverage {
	sums := make(map[string]*AlgorithmAverage)
	var order []string
	for _, r := range results {
		if filter != nil && !filter(r) {
			continue
		}
		avg, ok := sums[r.Algorithm]
		if !ok {
			avg = &AlgorithmAverage{Algorithm: r.Algorithm}
			sums[r.Algorithm] = avg
			order = append(order, r.Algorithm)
		}
		avg.Mean += r.TimeSeconds
		avg.Count++
	}

	out := make([]AlgorithmAverage, 0, len(order))
	for _, name := range order {
		avg := *sums[name]
		avg.Mean /= float64(avg.Count)
		out = append(out, avg)
	}
	slices.SortStableFunc(out, func(a, b AlgorithmAverage) int {
		switch {
		case a.Mean < b.Mean:
			return -1
		case a.Mean > b.Mean:
			return 1
		}
		return 0
	})
	return out
}

// OverallWinner is the algorithm with the lowest mean time on Random inputs
// of at least minSize.
func OverallWinner(results []benchmark.Result, minSize int) (AlgorithmAverage, bool) {
	avgs := Averages(results, InputTypeAtLeast(generator.Random, minSize))
	if len(avgs) == 0 {
		return AlgorithmAverage{}, false
	}
	return avgs[0], true
}

// Rank returns up to limit algorithms ordered by mean time on inputType at
// sizes of at least minSize. A limit <= 0 keeps all of them.
func Rank(results []benchmark.Result, inputType generator.InputType, minSize, limit int) []AlgorithmAverage {
	avgs := Averages(results, InputTypeAtLeast(inputType, minSize))
	if limit > 0 && len(avgs) > limit {
		avgs = avgs[:limit]
	}
	return avgs
}

// BestCase ranks algorithms on already sorted inputs.
func BestCase(results []benchmark.Result) []AlgorithmAverage {
	return Rank(results, generator.Sorted, CaseInputSize, RankingLimit)
}

// WorstCase ranks algorithms on reverse sorted inputs.
func WorstCase(results []benchmark.Result) []AlgorithmAverage {
	return Rank(results, generator.Reverse, CaseInputSize, RankingLimit)
}

// Fastest returns the single fastest matching result. Ties go to the first.
func Fastest(results []benchmark.Result, filter Filter) (benchmark.Result, bool) {
	var best benchmark.Result
	found := false
	for _, r := range results {
		if filter != nil && !filter(r) {
			continue
		}
		if !found || r.TimeSeconds < best.TimeSeconds {
			best = r
			found = true
		}
	}
	return best, found
}

func compareScenarios(a, b benchmark.Scenario) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
