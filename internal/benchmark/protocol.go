package benchmark

import (
	"slices"
	"time"

	"sortbench/internal/algorithms"
	"sortbench/internal/generator"
)

// DefaultQuadraticLimit is the largest size at which quadratic algorithms are
// still measured.
const DefaultQuadraticLimit = 50_000

// SkipPolicy excludes combinations that would take too long to run.
type SkipPolicy struct {
	QuadraticLimit int
}

func DefaultSkipPolicy() SkipPolicy {
	return SkipPolicy{QuadraticLimit: DefaultQuadraticLimit}
}

// Skip reports whether entry must not be measured at size.
func (p SkipPolicy) Skip(entry algorithms.Entry, size int) bool {
	return entry.Complexity == algorithms.Quadratic && size > p.QuadraticLimit
}

// Timer measures the wall-clock duration of a single call to fn.
type Timer func(fn func()) time.Duration

// MonotonicTimer times fn with the monotonic clock.
func MonotonicTimer(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// sink keeps sort results reachable so the call is never optimised away.
var sink []int

// Protocol runs the trials for one combination and reduces them to a single
// value.
type Protocol struct {
	Trials int
	Policy SkipPolicy
	Timer  Timer
}

// NewProtocol returns a Protocol using the monotonic timer. trials must be at
// least 1.
func NewProtocol(trials int, policy SkipPolicy) *Protocol {
	return &Protocol{Trials: trials, Policy: policy, Timer: MonotonicTimer}
}

// Measure runs p.Trials trials of entry on fresh inputs from gen. The second
// return value is false when the skip policy excludes the combination, in
// which case no trial runs.
func (p *Protocol) Measure(entry algorithms.Entry, size int, inputType generator.InputType, gen generator.Func) (Result, bool) {
	if p.Policy.Skip(entry, size) {
		return Result{}, false
	}
	return p.measure(entry, size, inputType, gen), true
}

func (p *Protocol) measure(entry algorithms.Entry, size int, inputType generator.InputType, gen generator.Func) Result {
	timer := p.Timer
	if timer == nil {
		timer = MonotonicTimer
	}

	samples := make([]float64, 0, p.Trials)
	for range p.Trials {
		input := gen(size)
		elapsed := timer(func() {
			sink = entry.Sort(input)
		})
		samples = append(samples, elapsed.Seconds())
	}
	sink = nil

	return Result{
		Algorithm:   entry.Name,
		InputSize:   size,
		InputType:   inputType,
		TimeSeconds: Median(samples),
		Trials:      p.Trials,
	}
}

// Median returns the element at index len/2 of the sorted samples; for an even
// count that is the upper median. It returns 0 for no samples and does not
// modify its argument.
func Median(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}
