package source

import (
	"math"
	"strconv"
	"testing"

	"github.com/nathanhack/infochannel/batch"
	"github.com/nathanhack/infochannel/channel"
	"github.com/nathanhack/infochannel/random"
)

func TestGenerateDraws(t *testing.T) {
	d, _ := channel.NewDistribution(0.5, 0.5)
	rng := &random.Sequence{Values: []float64{0.1, 0.7, 0.5, 0.49, 0.0, 0.99}}

	actual := Generate(rng, d, 2, 3)
	expected := batch.FromRows(
		[]int{0, 1, 1},
		[]int{0, 0, 1},
	)
	if !actual.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, actual)
	}
}

func TestGenerateDegenerate(t *testing.T) {
	tests := []struct {
		p0       float64
		expected int
	}{
		{1, 0},
		{0, 1},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			d, _ := channel.NewDistribution(test.p0, 1-test.p0)
			messages := Generate(random.New(int64(i)), d, 5, 7)
			for r := 0; r < 5; r++ {
				for c := 0; c < 7; c++ {
					if messages.At(r, c) != test.expected {
						t.Fatalf("expected every bit to be %v but found \n%v\n", test.expected, messages)
					}
				}
			}
		})
	}
}

func TestGenerateFrequency(t *testing.T) {
	d, _ := channel.NewDistribution(0.2, 0.8)
	rows, cols := 200, 100
	messages := Generate(random.New(7), d, rows, cols)

	ones := 0
	for r := 0; r < rows; r++ {
		for _, bit := range messages.Row(r) {
			ones += bit
		}
	}
	actual := float64(ones) / float64(rows*cols)
	if math.Abs(actual-0.8) > 0.02 {
		t.Fatalf("expected a ones frequency near 0.8 but found %v", actual)
	}
}
