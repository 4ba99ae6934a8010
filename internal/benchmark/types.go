package benchmark

import (
	"fmt"

	"sortbench/internal/generator"
)

// Result represents a single measured combination.
type Result struct {
	Algorithm   string              `json:"algorithm"`
	InputSize   int                 `json:"input_size"`
	InputType   generator.InputType `json:"input_type"`
	TimeSeconds float64             `json:"time_seconds"`
	Trials      int                 `json:"trials"`
}

// Scenario returns the (input type, size) pair the result belongs to.
func (r Result) Scenario() Scenario {
	return Scenario{InputType: r.InputType, Size: r.InputSize}
}

// Scenario is the unit of cross-algorithm comparison.
type Scenario struct {
	InputType generator.InputType
	Size      int
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s-%d", s.InputType, s.Size)
}

// Less orders scenarios by input type name, then numerically by size.
func (s Scenario) Less(o Scenario) bool {
	a, b := s.InputType.String(), o.InputType.String()
	if a != b {
		return a < b
	}
	return s.Size < o.Size
}
