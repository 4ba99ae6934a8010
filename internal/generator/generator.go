// Package generator produces benchmark inputs of a requested size and
// distribution shape.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// InputType names a distribution shape.
type InputType int

const (
	Random InputType = iota
	Sorted
	Reverse
	NearlySorted
)

// All returns the input types in benchmark order.
func All() []InputType {
	return []InputType{Random, Sorted, Reverse, NearlySorted}
}

func (t InputType) String() string {
	switch t {
	case Random:
		return "Random"
	case Sorted:
		return "Sorted"
	case Reverse:
		return "Reverse"
	case NearlySorted:
		return "Nearly Sorted"
	default:
		return fmt.Sprintf("InputType(%d)", int(t))
	}
}

// ParseInputType accepts a display name, case-insensitively and with or
// without the space in "Nearly Sorted".
func ParseInputType(s string) (InputType, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	norm = strings.ReplaceAll(norm, "_", "")
	switch norm {
	case "random":
		return Random, nil
	case "sorted":
		return Sorted, nil
	case "reverse":
		return Reverse, nil
	case "nearlysorted":
		return NearlySorted, nil
	}
	return 0, fmt.Errorf("unknown input type %q", s)
}

// MarshalText and UnmarshalText let InputType round-trip through JSON and
// viper as its display name.
func (t InputType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *InputType) UnmarshalText(b []byte) error {
	v, err := ParseInputType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Func generates a sequence of the given length.
type Func func(size int) []int

// Source generates inputs from a single random stream. It is not safe for
// concurrent use.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed. A zero seed draws one from the clock.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewFromRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewFromRand wraps an existing random stream.
func NewFromRand(r *rand.Rand) *Source {
	return &Source{rng: r}
}

// For returns the generator for an input type.
func (s *Source) For(t InputType) Func {
	switch t {
	case Sorted:
		return s.Sorted
	case Reverse:
		return s.Reverse
	case NearlySorted:
		return s.NearlySorted
	default:
		return s.Random
	}
}

// Random draws each element uniformly from [0, size*10).
func (s *Source) Random(size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = s.rng.IntN(size * 10)
	}
	return out
}

// Sorted returns 0, 1, ..., size-1.
func (s *Source) Sorted(size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = i
	}
	return out
}

// Reverse returns size, size-1, ..., 1. The range is deliberately offset by
// one from Sorted.
func (s *Source) Reverse(size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = size - i
	}
	return out
}

// NearlySorted starts from Sorted and performs size/10 swaps of uniformly
// drawn index pairs. Indices are drawn with replacement, so some swaps are
// no-ops.
func (s *Source) NearlySorted(size int) []int {
	out := s.Sorted(size)
	for range size / 10 {
		i := s.rng.IntN(size)
		j := s.rng.IntN(size)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
