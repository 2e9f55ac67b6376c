package channel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tolerance is how far a probability row may drift from summing to 1.
const Tolerance = 1e-6

// ErrMalformedInput is returned when a distribution or channel matrix is not a valid
// probability assignment over the binary alphabet.
var ErrMalformedInput = errors.New("malformed input")

//Distribution is the probability of the source emitting 0 and 1.
type Distribution struct {
	P0 float64
	P1 float64
}

//NewDistribution validates p0 and p1 and returns the distribution.
func NewDistribution(p0, p1 float64) (Distribution, error) {
	if err := validateRow([]float64{p0, p1}); err != nil {
		return Distribution{}, fmt.Errorf("source distribution %v: %w", []float64{p0, p1}, err)
	}
	return Distribution{P0: p0, P1: p1}, nil
}

//Probabilities returns {P0, P1}.
func (d Distribution) Probabilities() []float64 {
	return []float64{d.P0, d.P1}
}

func (d Distribution) String() string {
	return fmt.Sprintf("(%v, %v)", d.P0, d.P1)
}

//Matrix is the channel transition matrix where At(a, b) == P(b|a).
type Matrix struct {
	m *mat.Dense
}

//NewMatrix validates rows is a 2x2 row stochastic matrix and returns it.
func NewMatrix(rows [][]float64) (Matrix, error) {
	if len(rows) != 2 {
		return Matrix{}, fmt.Errorf("channel matrix requires 2 rows but found %v: %w", len(rows), ErrMalformedInput)
	}
	data := make([]float64, 0, 4)
	for i, row := range rows {
		if len(row) != 2 {
			return Matrix{}, fmt.Errorf("channel matrix row %v requires 2 columns but found %v: %w", i, len(row), ErrMalformedInput)
		}
		if err := validateRow(row); err != nil {
			return Matrix{}, fmt.Errorf("channel matrix row %v %v: %w", i, row, err)
		}
		data = append(data, row...)
	}
	return Matrix{m: mat.NewDense(2, 2, data)}, nil
}

//Identity is the noiseless channel.
func Identity() Matrix {
	return Matrix{m: mat.NewDense(2, 2, []float64{1, 0, 0, 1})}
}

//Symmetric returns the binary symmetric channel with the given crossover probability.
func Symmetric(crossover float64) (Matrix, error) {
	return NewMatrix([][]float64{
		{1 - crossover, crossover},
		{crossover, 1 - crossover},
	})
}

//At returns P(b|a).
func (c Matrix) At(a, b int) float64 {
	return c.m.At(a, b)
}

//Rows returns a copy of the matrix as rows.
func (c Matrix) Rows() [][]float64 {
	return [][]float64{
		{c.m.At(0, 0), c.m.At(0, 1)},
		{c.m.At(1, 0), c.m.At(1, 1)},
	}
}

func (c Matrix) String() string {
	return fmt.Sprintf("%v", c.Rows())
}

func validateRow(row []float64) error {
	for _, p := range row {
		if math.IsNaN(p) || p < 0 || 1 < p {
			return fmt.Errorf("probability %v outside [0,1]: %w", p, ErrMalformedInput)
		}
	}
	if sum := floats.Sum(row); math.Abs(sum-1) > Tolerance {
		return fmt.Errorf("probabilities sum to %v instead of 1: %w", sum, ErrMalformedInput)
	}
	return nil
}
