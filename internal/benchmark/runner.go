package benchmark

import (
	"context"

	"sortbench/internal/algorithms"
	"sortbench/internal/generator"
)

// Runner defines the interface for running a benchmark over a set of sizes.
type Runner interface {
	Run(ctx context.Context, sizes []int) ([]Result, error)
}

// Orchestrator implements Runner by iterating sizes, input types and
// registry entries strictly in sequence.
type Orchestrator struct {
	registry []algorithms.Entry
	protocol *Protocol
	inputs   *generator.Source
	observer Observer
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithObserver attaches an observer that receives progress events.
func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// NewOrchestrator builds an orchestrator over registry. Results appear in
// size, input type, registry order.
func NewOrchestrator(registry []algorithms.Entry, protocol *Protocol, inputs *generator.Source, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry: registry,
		protocol: protocol,
		inputs:   inputs,
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run measures every eligible combination. Repeated sizes are measured once,
// in first-seen order. The context is only consulted between combinations; a
// cancelled run returns what was measured so far together with the context
// error.
func (o *Orchestrator) Run(ctx context.Context, sizes []int) ([]Result, error) {
	sizes = uniqueSizes(sizes)
	o.observer.RunStarted(sizes, o.protocol.Trials, len(o.registry))

	var results []Result
	for _, size := range sizes {
		o.observer.SizeStarted(size)

		// Eligibility depends only on (entry, size); decide it once for all
		// input types.
		skip := make([]bool, len(o.registry))
		for i, entry := range o.registry {
			skip[i] = o.protocol.Policy.Skip(entry, size)
		}

		for _, inputType := range generator.All() {
			gen := o.inputs.For(inputType)
			for i, entry := range o.registry {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				if skip[i] {
					o.observer.Skipped(entry, size, inputType)
					continue
				}
				res := o.protocol.measure(entry, size, inputType, gen)
				results = append(results, res)
				o.observer.Measured(res)
			}
		}
	}

	o.observer.RunFinished(results)
	return results, nil
}

func uniqueSizes(sizes []int) []int {
	seen := make(map[int]bool, len(sizes))
	out := make([]int, 0, len(sizes))
	for _, s := range sizes {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
