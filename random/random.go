package random

import (
	"math/rand"
	"time"
)

// Source provides uniform draws in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// New returns a Source seeded with seed so runs can be repeated.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeeded returns a Source seeded from the clock, so every run is different.
func NewTimeSeeded() Source {
	return New(time.Now().UnixNano())
}

// Sequence replays the given values in order, wrapping around at the end.
// It is mostly useful for forcing exact draws in tests.
type Sequence struct {
	Values []float64
	next   int
}

func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		panic("sequence requires at least one value")
	}
	v := s.Values[s.next]
	s.next = (s.next + 1) % len(s.Values)
	return v
}

// Constant always returns the same draw.
type Constant float64

func (c Constant) Float64() float64 {
	return float64(c)
}
