package analysis

import (
	"errors"
	"fmt"

	"github.com/nathanhack/infochannel/batch"
	"github.com/nathanhack/infochannel/crossparity"
	"golang.org/x/exp/slices"
)

var ErrShapeMismatch = errors.New("sent and received batches do not cover the messages")

//Result counts how the messages of one batch made it through the channel.
type Result struct {
	Correct   int // messages received without any bit error
	Incorrect int // messages received with at least one bit error
	Corrected int // messages the parity decoder flipped a bit in
	Residual  int // messages still different from what was sent after correction
	Parity    bool
	Pattern   crossparity.Pattern
}

func (r Result) String() string {
	if !r.Parity {
		return fmt.Sprintf("{Correct:%v, Incorrect:%v}", r.Correct, r.Incorrect)
	}
	return fmt.Sprintf("{Correct:%v, Incorrect:%v, Corrected:%v, Residual:%v, Pattern:%v}",
		r.Correct, r.Incorrect, r.Corrected, r.Residual, r.Pattern)
}

//Compare counts the messages (the first n rows, first m bits) that arrived intact.
func Compare(sent, received *batch.Batch, n, m int) (correct, incorrect int, err error) {
	if err := checkShape(sent, n, m); err != nil {
		return 0, 0, err
	}
	if err := checkShape(received, n, m); err != nil {
		return 0, 0, err
	}

	for i := 0; i < n; i++ {
		if rowEqual(sent, received, i, m) {
			correct++
		}
	}
	return correct, n - correct, nil
}

//Analyze compares sent and received messages. When parity is true both batches must be
// cross parity blocks of n x m messages and received is also decoded and corrected.
func Analyze(sent, received *batch.Batch, n, m int, parity bool) (Result, error) {
	correct, incorrect, err := Compare(sent, received, n, m)
	if err != nil {
		return Result{}, err
	}
	result := Result{
		Correct:   correct,
		Incorrect: incorrect,
		Residual:  incorrect,
		Parity:    parity,
	}
	if !parity {
		return result, nil
	}

	if rows, cols := received.Dims(); rows != n+1 || cols != m+1 {
		return Result{}, fmt.Errorf("parity block (%v, %v) for (%v, %v) messages: %w", rows, cols, n, m, ErrShapeMismatch)
	}

	decoded, err := crossparity.DecodeAndCorrect(received)
	if err != nil {
		return Result{}, err
	}
	result.Pattern = decoded.Pattern
	result.Corrected = decoded.CorrectedCount()

	residualCorrect, _, err := Compare(sent, decoded.Messages, n, m)
	if err != nil {
		return Result{}, err
	}
	result.Residual = n - residualCorrect
	return result, nil
}

func checkShape(b *batch.Batch, n, m int) error {
	rows, cols := b.Dims()
	if rows < n || cols < m {
		return fmt.Errorf("batch (%v, %v) for (%v, %v) messages: %w", rows, cols, n, m, ErrShapeMismatch)
	}
	return nil
}

func rowEqual(a, b *batch.Batch, i, m int) bool {
	return slices.Equal(a.Row(i)[:m], b.Row(i)[:m])
}
