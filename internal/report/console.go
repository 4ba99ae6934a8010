package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"sortbench/internal/algorithms"
	"sortbench/internal/analysis"
	"sortbench/internal/benchmark"
	"sortbench/internal/generator"
	"sortbench/internal/ui"

	"github.com/dustin/go-humanize"
)

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n\n", ui.SectionStyle.Render("=== "+title+" ==="))
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, ui.GroupStyle.Render(title))
	fmt.Fprintln(w, ui.RuleStyle.Render(rule))
}

func row(name string, seconds float64) string {
	return fmt.Sprintf("  %-20s %s", name, ui.TimeStyle.Render(FormatTime(seconds)))
}

// PrintBanner prints a boxed title line.
func PrintBanner(w io.Writer, title string) {
	fmt.Fprintln(w, ui.BannerStyle.Render(title))
}

// PrintConfiguration lists the algorithms, input types and run settings.
func PrintConfiguration(w io.Writer, registry []algorithms.Entry, sizes []int, trials int, quick bool) {
	fmt.Fprintf(w, "This benchmark will test %d sorting algorithms:\n", len(registry))
	for _, e := range registry {
		fmt.Fprintf(w, "  • %s (%s)\n", e.Name, e.Complexity)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Input types tested:")
	for _, it := range generator.All() {
		fmt.Fprintf(w, "  • %s\n", it)
	}
	fmt.Fprintln(w)

	mode := "FULL (accurate results)"
	if quick {
		mode = "QUICK (for testing)"
	}
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintf(w, "  • Input sizes: %s\n", FormatSizes(sizes))
	fmt.Fprintf(w, "  • Trials per test: %d\n", trials)
	fmt.Fprintf(w, "  • Mode: %s\n\n", mode)
}

// PrintResultsTable prints every scenario, grouped by input type then size,
// with its results ordered from fastest to slowest.
func PrintResultsTable(w io.Writer, results []benchmark.Result) {
	section(w, "Benchmark Results Table")

	groups := make(map[benchmark.Scenario][]benchmark.Result)
	var keys []benchmark.Scenario
	for _, r := range results {
		key := r.Scenario()
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], r)
	}
	slices.SortFunc(keys, func(a, b benchmark.Scenario) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})

	for _, key := range keys {
		group := slices.Clone(groups[key])
		slices.SortStableFunc(group, func(a, b benchmark.Result) int {
			switch {
			case a.TimeSeconds < b.TimeSeconds:
				return -1
			case a.TimeSeconds > b.TimeSeconds:
				return 1
			}
			return 0
		})

		heading(w, fmt.Sprintf("%s data, size %s:", key.InputType, humanize.Comma(int64(key.Size))))
		for _, r := range group {
			fmt.Fprintln(w, row(r.Algorithm, r.TimeSeconds))
		}
		fmt.Fprintln(w)
	}
}

// PrintAnalysis prints per-scenario winners and the aggregate observations.
func PrintAnalysis(w io.Writer, rep *analysis.Report) {
	section(w, "Performance Analysis")

	heading(w, "Fastest algorithm for each scenario:")
	for _, win := range rep.Winners {
		fmt.Fprintf(w, "  %s: %s (%s)\n",
			win.Scenario, ui.WinnerStyle.Render(win.Result.Algorithm), FormatTime(win.Result.TimeSeconds))
	}

	fmt.Fprintln(w)
	heading(w, "Key Observations:")

	if len(rep.LargeRandom) > 0 {
		fmt.Fprintf(w, "\nAverage time on large random inputs (≥%s):\n", humanize.Comma(analysis.LargeInputSize))
		for _, a := range rep.LargeRandom {
			fmt.Fprintln(w, row(a.Algorithm, a.Mean))
		}
	}

	if len(rep.BestCase) > 0 {
		fmt.Fprintln(w, "\nBest-case (already sorted) performance:")
		for _, a := range rep.BestCase {
			fmt.Fprintln(w, row(a.Algorithm, a.Mean))
		}
	}

	if len(rep.WorstCase) > 0 {
		fmt.Fprintln(w, "\nWorst-case (reverse sorted) performance:")
		for _, a := range rep.WorstCase {
			fmt.Fprintln(w, row(a.Algorithm, a.Mean))
		}
	}

	if len(rep.Adaptive) > 0 {
		fmt.Fprintln(w, "\nAdaptive behaviour (random / sorted time > 2x):")
		for _, a := range rep.Adaptive {
			fmt.Fprintf(w, "  %-20s %.1fx at size %s\n", a.Algorithm, a.Ratio, humanize.Comma(int64(a.Size)))
		}
	}
	fmt.Fprintln(w)
}

// PrintRecommendations prints practical advice derived from the analysis.
func PrintRecommendations(w io.Writer, rep *analysis.Report) {
	arrow := ui.ArrowStyle.Render("→")

	fmt.Fprintln(w, "Based on your benchmark results:")
	fmt.Fprintln(w)

	if rep.HasOverallWinner {
		fmt.Fprintln(w, "For general-purpose sorting:")
		fmt.Fprintf(w, "  %s Use %s\n", arrow, ui.WinnerStyle.Render(rep.OverallWinner.Algorithm))
		fmt.Fprintln(w, "    (Fastest on random data)")
		fmt.Fprintln(w)
	}

	if rep.HasInsertionSpeedup && rep.InsertionSpeedup.Adaptive() {
		fmt.Fprintln(w, "For nearly sorted data:")
		fmt.Fprintf(w, "  %s Use %s\n", arrow, rep.InsertionSpeedup.Algorithm)
		fmt.Fprintf(w, "    (%dx faster on sorted data!)\n", int(rep.InsertionSpeedup.Ratio))
		fmt.Fprintln(w)
	}

	advice := []struct{ when, use, why string }{
		{"For production systems:", "Consider hybrid algorithms (Timsort, Introsort)", "These combine strengths of multiple algorithms"},
		{"For memory-constrained systems:", "Use Heap Sort or in-place Quick Sort", "Both use O(1) or O(log n) extra space"},
		{"When stability matters:", "Use Merge Sort or Insertion Sort", "These preserve relative order of equal elements"},
	}
	for i, a := range advice {
		fmt.Fprintln(w, a.when)
		fmt.Fprintf(w, "  %s %s\n", arrow, a.use)
		fmt.Fprintf(w, "    %s\n", a.why)
		if i < len(advice)-1 {
			fmt.Fprintln(w)
		}
	}
}

// PrintExportHeader prints the divider that precedes export status lines.
func PrintExportHeader(w io.Writer, title string) {
	line := strings.Repeat("═", 60)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", line, ui.SectionStyle.Render(title), line)
}
