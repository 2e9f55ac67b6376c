package analysis

import (
	"errors"
	"strconv"
	"testing"

	"github.com/nathanhack/infochannel/batch"
	"github.com/nathanhack/infochannel/crossparity"
)

func TestCompare(t *testing.T) {
	sent := batch.FromRows(
		[]int{1, 0, 1, 1},
		[]int{0, 1, 1, 0},
		[]int{1, 1, 1, 0},
	)
	tests := []struct {
		flips     [][2]int
		correct   int
		incorrect int
	}{
		{nil, 3, 0},
		{[][2]int{{1, 2}}, 2, 1},
		{[][2]int{{1, 2}, {1, 3}}, 2, 1},
		{[][2]int{{0, 0}, {1, 1}, {2, 2}}, 0, 3},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			received := sent.Copy()
			for _, f := range test.flips {
				received.Flip(f[0], f[1])
			}
			correct, incorrect, err := Compare(sent, received, 3, 4)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if correct != test.correct || incorrect != test.incorrect {
				t.Fatalf("expected (%v, %v) but found (%v, %v)", test.correct, test.incorrect, correct, incorrect)
			}
		})
	}
}

func TestCompareIgnoresParity(t *testing.T) {
	messages := batch.FromRows([]int{1, 0}, []int{0, 1})
	sent := crossparity.Encode(messages)
	received := sent.Copy()
	received.Flip(0, 2) // row parity bit
	received.Flip(2, 0) // column parity bit

	correct, incorrect, err := Compare(sent, received, 2, 2)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if correct != 2 || incorrect != 0 {
		t.Fatalf("expected (2, 0) but found (%v, %v)", correct, incorrect)
	}
}

func TestAnalyzeSingleError(t *testing.T) {
	messages := batch.FromRows(
		[]int{1, 0, 1, 1},
		[]int{0, 1, 1, 0},
		[]int{1, 1, 1, 0},
	)
	sent := crossparity.Encode(messages)
	received := sent.Copy()
	received.Flip(1, 3)

	actual, err := Analyze(sent, received, 3, 4, true)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	expected := Result{Correct: 2, Incorrect: 1, Corrected: 1, Residual: 0, Parity: true, Pattern: crossparity.SingleError}
	if actual != expected {
		t.Fatalf("expected %v but found %v", expected, actual)
	}
}

func TestAnalyzeUncorrectable(t *testing.T) {
	messages := batch.FromRows(
		[]int{1, 0, 1, 1},
		[]int{0, 1, 1, 0},
		[]int{1, 1, 1, 0},
	)
	sent := crossparity.Encode(messages)
	received := sent.Copy()
	received.Flip(2, 0)
	received.Flip(2, 3)

	actual, err := Analyze(sent, received, 3, 4, true)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	expected := Result{Correct: 2, Incorrect: 1, Corrected: 0, Residual: 1, Parity: true, Pattern: crossparity.Uncorrectable}
	if actual != expected {
		t.Fatalf("expected %v but found %v", expected, actual)
	}
}

func TestAnalyzeWithoutParity(t *testing.T) {
	sent := batch.FromRows([]int{1, 0}, []int{0, 1})
	received := sent.Copy()
	received.Flip(0, 0)

	actual, err := Analyze(sent, received, 2, 2, false)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	expected := Result{Correct: 1, Incorrect: 1, Residual: 1}
	if actual != expected {
		t.Fatalf("expected %v but found %v", expected, actual)
	}
}

func TestAnalyzeShapeMismatch(t *testing.T) {
	sent := batch.FromRows([]int{1, 0}, []int{0, 1})
	if _, err := Analyze(sent, sent.Copy(), 3, 2, false); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected %v but found %v", ErrShapeMismatch, err)
	}
	if _, err := Analyze(sent, sent.Copy(), 2, 2, true); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected %v but found %v", ErrShapeMismatch, err)
	}
}
