package analysis

import (
	"sortbench/internal/benchmark"
	"sortbench/internal/generator"
)

// insertionSort is the algorithm the recommendations single out for nearly
// sorted data.
const insertionSort = "Insertion Sort"

// Report bundles the analyses the exporters render.
type Report struct {
	Winners     []Winner
	LargeRandom []AlgorithmAverage
	BestCase    []AlgorithmAverage
	WorstCase   []AlgorithmAverage
	Adaptive    []AdaptivityRatio
	Statistics  []AlgorithmStats

	OverallWinner    AlgorithmAverage
	HasOverallWinner bool

	FastestSorted    benchmark.Result
	HasFastestSorted bool

	// InsertionSpeedup is Insertion Sort's Random/Sorted ratio at the first
	// size of at least CaseInputSize where both were measured.
	InsertionSpeedup    AdaptivityRatio
	HasInsertionSpeedup bool
}

// Analyze computes every analysis with the standard thresholds.
func Analyze(results []benchmark.Result) *Report {
	rep := &Report{
		Winners:     Winners(results),
		LargeRandom: Averages(results, InputTypeAtLeast(generator.Random, LargeInputSize)),
		BestCase:    BestCase(results),
		WorstCase:   WorstCase(results),
		Adaptive:    AdaptiveAlgorithms(results, CaseInputSize),
		Statistics:  Statistics(results),
	}
	rep.OverallWinner, rep.HasOverallWinner = OverallWinner(results, CaseInputSize)
	rep.FastestSorted, rep.HasFastestSorted = Fastest(results, InputTypeAtLeast(generator.Sorted, CaseInputSize))

	for _, a := range Adaptivities(results, CaseInputSize) {
		if a.Algorithm == insertionSort {
			rep.InsertionSpeedup, rep.HasInsertionSpeedup = a, true
			break
		}
	}
	return rep
}
