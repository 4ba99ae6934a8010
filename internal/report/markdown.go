package report

import (
	"fmt"
	"strings"

	"sortbench/internal/benchmark"
)

// Markdown renders one table per input size. Rows are algorithms sorted by
// name, columns are input types sorted by name, and a combination that was
// not measured shows N/A.
func Markdown(results []benchmark.Result) string {
	var md strings.Builder

	md.WriteString("# Sorting Algorithm Benchmark Results\n\n")

	bySize := make(map[int][]benchmark.Result)
	for _, r := range results {
		bySize[r.InputSize] = append(bySize[r.InputSize], r)
	}

	for _, size := range sortedKeys(bySize) {
		sizeResults := bySize[size]
		fmt.Fprintf(&md, "## Size: %d\n\n", size)

		cells := make(map[string]map[string]benchmark.Result)
		inputTypes := make(map[string]bool)
		for _, r := range sizeResults {
			it := r.InputType.String()
			inputTypes[it] = true
			if cells[r.Algorithm] == nil {
				cells[r.Algorithm] = make(map[string]benchmark.Result)
			}
			cells[r.Algorithm][it] = r
		}
		columns := sortedKeys(inputTypes)

		md.WriteString("| Algorithm | " + strings.Join(columns, " | ") + " |\n")
		md.WriteString("|-----------|" + strings.Repeat("------|", len(columns)) + "\n")

		for _, algo := range sortedKeys(cells) {
			fmt.Fprintf(&md, "| %s |", algo)
			for _, it := range columns {
				cell := "N/A"
				if r, ok := cells[algo][it]; ok {
					cell = FormatTime(r.TimeSeconds)
				}
				fmt.Fprintf(&md, " %s |", cell)
			}
			md.WriteString("\n")
		}
		md.WriteString("\n")
	}

	return md.String()
}
