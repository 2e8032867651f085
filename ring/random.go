package ring

import (
	"math/rand"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource wraps a seeded math/rand generator.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
// Used to drive the sampler deterministically.
type SequenceSource struct {
	values []float64
	next   int
	drawn  int
}

// NewSequenceSource panics when given no values.
func NewSequenceSource(values ...float64) *SequenceSource {
	if len(values) == 0 {
		panic("ring: empty sequence")
	}
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() float64 {
	if len(s.values) == 0 {
		panic("ring: empty sequence")
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	s.drawn++
	return v
}

// Drawn reports how many values have been consumed in total.
func (s *SequenceSource) Drawn() int { return s.drawn }
