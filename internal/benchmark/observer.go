package benchmark

import (
	"log/slog"

	"sortbench/internal/algorithms"
	"sortbench/internal/generator"
)

// Observer receives progress events from an Orchestrator. Callbacks run on
// the orchestrator's goroutine between timed trials.
type Observer interface {
	RunStarted(sizes []int, trials, algorithmCount int)
	SizeStarted(size int)
	Measured(result Result)
	Skipped(entry algorithms.Entry, size int, inputType generator.InputType)
	RunFinished(results []Result)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) RunStarted([]int, int, int)                         {}
func (NopObserver) SizeStarted(int)                                    {}
func (NopObserver) Measured(Result)                                    {}
func (NopObserver) Skipped(algorithms.Entry, int, generator.InputType) {}
func (NopObserver) RunFinished([]Result)                               {}

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) RunStarted(sizes []int, trials, algorithmCount int) {
	for _, o := range m {
		o.RunStarted(sizes, trials, algorithmCount)
	}
}

func (m MultiObserver) SizeStarted(size int) {
	for _, o := range m {
		o.SizeStarted(size)
	}
}

func (m MultiObserver) Measured(result Result) {
	for _, o := range m {
		o.Measured(result)
	}
}

func (m MultiObserver) Skipped(entry algorithms.Entry, size int, inputType generator.InputType) {
	for _, o := range m {
		o.Skipped(entry, size, inputType)
	}
}

func (m MultiObserver) RunFinished(results []Result) {
	for _, o := range m {
		o.RunFinished(results)
	}
}

// LogObserver writes events to a structured logger.
type LogObserver struct {
	Logger *slog.Logger
}

func (l LogObserver) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

func (l LogObserver) RunStarted(sizes []int, trials, algorithmCount int) {
	l.logger().Info("benchmark started", "sizes", sizes, "trials", trials, "algorithms", algorithmCount)
}

func (l LogObserver) SizeStarted(size int) {
	l.logger().Debug("testing size", "size", size)
}

func (l LogObserver) Measured(r Result) {
	l.logger().Debug("measured",
		"algorithm", r.Algorithm,
		"size", r.InputSize,
		"input_type", r.InputType.String(),
		"seconds", r.TimeSeconds,
		"trials", r.Trials,
	)
}

func (l LogObserver) Skipped(entry algorithms.Entry, size int, inputType generator.InputType) {
	l.logger().Debug("skipped",
		"algorithm", entry.Name,
		"size", size,
		"input_type", inputType.String(),
		"complexity", entry.Complexity.String(),
	)
}

func (l LogObserver) RunFinished(results []Result) {
	l.logger().Info("benchmark finished", "results", len(results))
}
