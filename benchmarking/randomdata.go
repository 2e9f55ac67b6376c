package benchmarking

import (
	"github.com/nathanhack/infochannel/batch"
	"github.com/nathanhack/infochannel/random"
)

// RandomFlipBitCount returns a copy of input with min(numberOfBitsToFlip, bits in input) distinct bits flipped.
func RandomFlipBitCount(rng random.Source, input *batch.Batch, numberOfBitsToFlip int) *batch.Batch {
	output := input.Copy()
	rows, cols := input.Dims()
	total := rows * cols

	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < total {
		flip[int(rng.Float64()*float64(total))] = true
	}

	for i := range flip {
		output.Flip(i/cols, i%cols)
	}
	return output
}

// HammingDistance counts the bits that differ between two batches of the same shape.
func HammingDistance(a, b *batch.Batch) int {
	rows, cols := a.Dims()
	count := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if a.At(i, j) != b.At(i, j) {
				count++
			}
		}
	}
	return count
}
