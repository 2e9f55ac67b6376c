package random

import (
	"strconv"
	"testing"
)

func TestNewIsRepeatable(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("expected %v but found %v at draw %v", x, y, i)
		}
		if x < 0 || 1 <= x {
			t.Fatalf("expected draw in [0,1) but found %v", x)
		}
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		values   []float64
		draws    int
		expected []float64
	}{
		{[]float64{0.1}, 3, []float64{0.1, 0.1, 0.1}},
		{[]float64{0.1, 0.9}, 5, []float64{0.1, 0.9, 0.1, 0.9, 0.1}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := &Sequence{Values: test.values}
			for j := 0; j < test.draws; j++ {
				if actual := s.Float64(); actual != test.expected[j] {
					t.Fatalf("expected %v but found %v", test.expected[j], actual)
				}
			}
		})
	}
}
