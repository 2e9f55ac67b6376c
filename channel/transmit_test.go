package channel

import (
	"math"
	"testing"

	"github.com/nathanhack/infochannel/batch"
	"github.com/nathanhack/infochannel/random"
)

func TestTransmitNoiseless(t *testing.T) {
	sent := batch.FromRows(
		[]int{1, 0, 1, 1},
		[]int{0, 0, 1, 0},
		[]int{1, 1, 1, 1},
	)
	received := Transmit(random.New(1), Identity(), sent)
	if !received.Equals(sent) {
		t.Fatalf("expected \n%v\n but found \n%v\n", sent, received)
	}
}

func TestTransmitDraws(t *testing.T) {
	c, err := NewMatrix([][]float64{{0.8, 0.2}, {0.3, 0.7}})
	if err != nil {
		t.Fatal(err)
	}
	sent := batch.FromRows([]int{0, 0, 1, 1})
	// 0 survives below 0.8, 1 becomes 0 below 0.3
	rng := &random.Sequence{Values: []float64{0.79, 0.8, 0.29, 0.3}}

	received := Transmit(rng, c, sent)
	expected := batch.FromRows([]int{0, 1, 0, 1})
	if !received.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, received)
	}
	if !sent.Equals(batch.FromRows([]int{0, 0, 1, 1})) {
		t.Fatalf("expected sent batch to be untouched but found \n%v\n", sent)
	}
}

func TestTransmitInverting(t *testing.T) {
	c, err := NewMatrix([][]float64{{0, 1}, {1, 0}})
	if err != nil {
		t.Fatal(err)
	}
	sent := batch.FromRows([]int{0, 1, 1}, []int{1, 0, 0})
	received := Transmit(random.New(3), c, sent)
	expected := batch.FromRows([]int{1, 0, 0}, []int{0, 1, 1})
	if !received.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, received)
	}
}

func TestTransmitCrossoverRate(t *testing.T) {
	c, err := Symmetric(0.1)
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := 100, 200
	sent := batch.New(rows, cols)
	received := Transmit(random.New(11), c, sent)

	flipped := 0
	for r := 0; r < rows; r++ {
		for _, bit := range received.Row(r) {
			flipped += bit
		}
	}
	actual := float64(flipped) / float64(rows*cols)
	if math.Abs(actual-0.1) > 0.01 {
		t.Fatalf("expected a crossover rate near 0.1 but found %v", actual)
	}
}
