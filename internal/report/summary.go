package report

import (
	"fmt"
	"strings"
	"time"

	"sortbench/internal/analysis"
	"sortbench/internal/benchmark"
)

const rule = "------------------------------------------------------------"

// Summary renders the plain-text summary report. now is printed as the
// generation time.
func Summary(results []benchmark.Result, now time.Time) string {
	rep := analysis.Analyze(results)
	var b strings.Builder

	b.WriteString("SORTING ALGORITHM BENCHMARK SUMMARY\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02T15:04:05"))

	if rep.HasOverallWinner {
		b.WriteString("OVERALL WINNER (Random Data, Large Inputs):\n")
		fmt.Fprintf(&b, "  %s - Average time: %.6fs\n\n", rep.OverallWinner.Algorithm, rep.OverallWinner.Mean)
	}

	if rep.HasFastestSorted {
		best := rep.FastestSorted
		b.WriteString("BEST FOR ALREADY SORTED DATA:\n")
		fmt.Fprintf(&b, "  %s - %.6fs on size %d\n\n", best.Algorithm, best.TimeSeconds, best.InputSize)
	}

	b.WriteString("STATISTICS:\n")
	b.WriteString(rule + "\n")
	for _, s := range rep.Statistics {
		fmt.Fprintf(&b, "%s:\n", s.Algorithm)
		fmt.Fprintf(&b, "  Average: %.6fs\n", s.Mean)
		fmt.Fprintf(&b, "  Min: %.6fs\n", s.Min)
		fmt.Fprintf(&b, "  Max: %.6fs\n", s.Max)
		b.WriteString("\n")
	}

	return b.String()
}
