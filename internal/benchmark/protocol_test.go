package benchmark

import (
	"testing"
	"time"

	"sortbench/internal/algorithms"
	"sortbench/internal/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTimer returns the given durations in order, one per timed call.
func scriptedTimer(durations ...time.Duration) (Timer, *int) {
	calls := 0
	return func(fn func()) time.Duration {
		fn()
		d := durations[calls%len(durations)]
		calls++
		return d
	}, &calls
}

func entry(t *testing.T, name string) algorithms.Entry {
	t.Helper()
	e, ok := algorithms.Lookup(name)
	require.True(t, ok, name)
	return e
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.5}, 0.5},
		{"odd", []float64{0.002, 0.009, 0.004}, 0.004},
		{"even takes upper median", []float64{4, 1, 3, 2}, 3},
		{"duplicates", []float64{1, 1, 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.samples))
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	samples := []float64{3, 1, 2}
	Median(samples)
	assert.Equal(t, []float64{3, 1, 2}, samples)
}

func TestMeasureReducesToMedian(t *testing.T) {
	timer, calls := scriptedTimer(2*time.Millisecond, 9*time.Millisecond, 4*time.Millisecond)
	p := &Protocol{Trials: 3, Policy: DefaultSkipPolicy(), Timer: timer}
	src := generator.New(1)

	res, ok := p.Measure(entry(t, "Merge Sort"), 100, generator.Random, src.Random)

	require.True(t, ok)
	assert.Equal(t, 3, *calls)
	assert.InDelta(t, 0.004, res.TimeSeconds, 1e-12)
	assert.Equal(t, "Merge Sort", res.Algorithm)
	assert.Equal(t, 100, res.InputSize)
	assert.Equal(t, generator.Random, res.InputType)
	assert.Equal(t, 3, res.Trials)
}

func TestMeasureGeneratesFreshInputPerTrial(t *testing.T) {
	generated := 0
	gen := func(size int) []int {
		generated++
		return make([]int, size)
	}
	p := NewProtocol(5, DefaultSkipPolicy())

	_, ok := p.Measure(entry(t, "Heap Sort"), 10, generator.Sorted, gen)

	require.True(t, ok)
	assert.Equal(t, 5, generated)
}

func TestMeasureExcludesGenerationFromTiming(t *testing.T) {
	var order []string
	gen := func(size int) []int {
		order = append(order, "generate")
		return make([]int, size)
	}
	timer := func(fn func()) time.Duration {
		order = append(order, "start")
		fn()
		order = append(order, "stop")
		return time.Millisecond
	}
	p := &Protocol{Trials: 2, Policy: DefaultSkipPolicy(), Timer: timer}

	_, ok := p.Measure(entry(t, "Quick Sort"), 10, generator.Random, gen)

	require.True(t, ok)
	assert.Equal(t, []string{"generate", "start", "stop", "generate", "start", "stop"}, order)
}

func TestMeasureSkipsQuadraticAboveLimit(t *testing.T) {
	timer, calls := scriptedTimer(time.Millisecond)
	p := &Protocol{Trials: 1, Policy: DefaultSkipPolicy(), Timer: timer}
	gen := func(size int) []int {
		t.Fatal("generator must not run for a skipped combination")
		return nil
	}

	for _, name := range []string{"Insertion Sort", "Selection Sort"} {
		_, ok := p.Measure(entry(t, name), 50_001, generator.Random, gen)
		assert.False(t, ok, name)
	}
	assert.Equal(t, 0, *calls)
}

func TestSkipPolicy(t *testing.T) {
	policy := DefaultSkipPolicy()
	for _, e := range algorithms.Registry() {
		assert.False(t, policy.Skip(e, 50_000), "%s at the limit", e.Name)
		assert.Equal(t, e.Complexity == algorithms.Quadratic, policy.Skip(e, 50_001), e.Name)
	}

	strict := SkipPolicy{QuadraticLimit: 0}
	assert.True(t, strict.Skip(entry(t, "Insertion Sort"), 1))
	assert.False(t, strict.Skip(entry(t, "Insertion Sort"), 0))
}

func TestMeasureSizeZero(t *testing.T) {
	p := NewProtocol(1, DefaultSkipPolicy())
	src := generator.New(3)

	for _, e := range algorithms.Registry() {
		res, ok := p.Measure(e, 0, generator.Random, src.Random)
		require.True(t, ok, e.Name)
		assert.GreaterOrEqual(t, res.TimeSeconds, 0.0)
	}
}

func TestNilTimerFallsBackToMonotonic(t *testing.T) {
	p := &Protocol{Trials: 1, Policy: DefaultSkipPolicy()}
	res, ok := p.Measure(entry(t, "Merge Sort"), 10, generator.Random, generator.New(1).Random)
	require.True(t, ok)
	assert.GreaterOrEqual(t, res.TimeSeconds, 0.0)
}
