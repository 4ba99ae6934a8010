// Package report renders benchmark results and analyses as console tables,
// CSV, Markdown, JSON and a plain-text summary.
package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatTime renders a duration in seconds with the coarsest unit that keeps
// it above one: microseconds, milliseconds, then seconds.
func FormatTime(seconds float64) string {
	switch {
	case seconds < 0.001:
		return fmt.Sprintf("%d µs", int(seconds*1_000_000))
	case seconds < 1.0:
		return fmt.Sprintf("%d ms", int(seconds*1_000))
	default:
		return fmt.Sprintf("%.3f s", seconds)
	}
}

// FormatSizes joins sizes with digit grouping, e.g. "10, 1,000, 50,000".
func FormatSizes(sizes []int) string {
	parts := make([]string, 0, len(sizes))
	for _, s := range sizes {
		parts = append(parts, humanize.Comma(int64(s)))
	}
	return strings.Join(parts, ", ")
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
