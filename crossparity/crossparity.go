// Package crossparity implements the two dimensional (cross) parity code.
// An N x M block of messages is extended to (N+1) x (M+1): column M holds the parity of each row,
// row N holds the parity of each column and (N,M) holds the parity of the whole block.
// A single bit error is located at the intersection of the one failing row and the one failing column.
package crossparity

import (
	"errors"
	"fmt"

	"github.com/nathanhack/infochannel/batch"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

var ErrBlockTooSmall = errors.New("encoded block must be at least 2x2")

//Pattern describes the parity failures found while decoding a block.
type Pattern int

const (
	Clean         Pattern = iota // every parity check passed
	SingleError                  // exactly one failing row and column, the bit was flipped back
	Uncorrectable                // any other failure, nothing was changed
)

func (p Pattern) String() string {
	switch p {
	case Clean:
		return "clean"
	case SingleError:
		return "single-error"
	case Uncorrectable:
		return "uncorrectable"
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

//Decoded is the result of DecodeAndCorrect.
type Decoded struct {
	Messages      *batch.Batch // the N x M messages after correction
	Corrected     []bool       // Corrected[i] is true when a bit of message i was flipped back
	Pattern       Pattern
	FaultyRows    []int
	FaultyColumns []int
}

//CorrectedCount returns the number of messages that were corrected.
func (d Decoded) CorrectedCount() (count int) {
	for _, c := range d.Corrected {
		if c {
			count++
		}
	}
	return
}

//Encode returns the (N+1)x(M+1) cross parity block for the N x M messages.
// messages is not modified.
func Encode(messages *batch.Batch) *batch.Batch {
	n, m := messages.Dims()
	block := messages.Grow(n+1, m+1)

	rowParity := messages.RowParity()
	for i := 0; i < n; i++ {
		block.Set(i, m, rowParity.At(i))
	}
	columnParity := messages.ColumnParity()
	for j := 0; j < m; j++ {
		block.Set(n, j, columnParity.At(j))
	}

	// both the parity column and the parity row must reduce to the same global parity
	p1 := rowParity.HammingWeight() % 2
	p2 := columnParity.HammingWeight() % 2
	if p1 != p2 {
		panic(fmt.Sprintf("row parity %v and column parity %v disagree", p1, p2))
	}
	block.Set(n, m, p1)

	return block
}

//DecodeAndCorrect checks the parity of the received (N+1)x(M+1) block and returns the N x M messages.
// When exactly one message row and one message column fail their parity check the bit at their
// intersection is flipped. Any other failure leaves the messages as received.
func DecodeAndCorrect(received *batch.Batch) (Decoded, error) {
	rows, cols := received.Dims()
	if rows < 2 || cols < 2 {
		return Decoded{}, fmt.Errorf("found (%v, %v): %w", rows, cols, ErrBlockTooSmall)
	}
	n, m := rows-1, cols-1

	// a row (column) passes when its bits including the stored parity sum to 0
	faultyRows := limit(received.RowParity().NonzeroArray(), n)
	faultyColumns := limit(received.ColumnParity().NonzeroArray(), m)

	decoded := Decoded{
		Messages:      received.Region(n, m),
		Corrected:     make([]bool, n),
		FaultyRows:    faultyRows,
		FaultyColumns: faultyColumns,
	}

	switch {
	case len(faultyRows) == 0 && len(faultyColumns) == 0:
		decoded.Pattern = Clean
	case len(faultyRows) == 1 && len(faultyColumns) == 1:
		r, c := faultyRows[0], faultyColumns[0]
		decoded.Messages.Flip(r, c)
		decoded.Corrected[r] = true
		decoded.Pattern = SingleError
		logrus.Debugf("Corrected bit (%v, %v)", r, c)
	default:
		decoded.Pattern = Uncorrectable
		logrus.Debugf("Uncorrectable parity failures rows:%v columns:%v", faultyRows, faultyColumns)
	}
	return decoded, nil
}

// limit keeps the sorted indices below max, dropping the parity row/column itself.
func limit(indices []int, max int) []int {
	result := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < max {
			result = append(result, i)
		}
	}
	slices.Sort(result)
	return result
}
