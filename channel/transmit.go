package channel

import (
	"github.com/nathanhack/infochannel/batch"
	"github.com/nathanhack/infochannel/random"
)

//Transmit sends every bit of b through the channel and returns what was received.
// Each bit uses one independent draw: a sent bit a is received as 0 when the draw is below P(0|a).
// b is never modified.
func Transmit(rng random.Source, c Matrix, b *batch.Batch) *batch.Batch {
	rows, cols := b.Dims()
	received := batch.New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() >= c.At(b.At(i, j), 0) {
				received.Set(i, j, 1)
			}
		}
	}
	return received
}
