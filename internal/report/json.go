package report

import (
	"encoding/json"
	"fmt"

	"sortbench/internal/benchmark"
)

// JSON returns the results as an indented JSON array.
func JSON(results []benchmark.Result) ([]byte, error) {
	if results == nil {
		results = []benchmark.Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal results: %w", err)
	}
	return append(data, '\n'), nil
}
