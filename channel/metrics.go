package channel

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Metrics holds the information measures of a source feeding a channel, in bits.
type Metrics struct {
	HA                float64 // H(A) source entropy
	HB                float64 // H(B) output entropy
	HAGivenB0         float64 // H(A|b=0)
	HAGivenB1         float64 // H(A|b=1)
	Equivocation      float64 // H(A|B)
	MutualInformation float64 // I(A;B)
	JointEntropy      float64 // H(A,B)
	Loss              float64 // H(B|A)
	PB0               float64 // P(b=0)
	PB1               float64 // P(b=1)
}

//Info returns the information content -log2(p) of an event with probability p.
// Impossible events carry no information so Info(0) == 0.
func Info(p float64) float64 {
	if p > 0 {
		return -math.Log2(p)
	}
	return 0
}

//Entropy returns H(A) = sum(p*Info(p)).
func Entropy(d Distribution) float64 {
	return entropy(d.Probabilities())
}

func entropy(probabilities []float64) float64 {
	h := 0.0
	for _, p := range probabilities {
		h += p * Info(p)
	}
	return h
}

//Marginal returns P(b=column) = sum(P(a)*P(b=column|a)).
func Marginal(d Distribution, c Matrix, column int) float64 {
	return marginals(d, c).AtVec(column)
}

// marginals calculates P(b) = C^T * P(a)
func marginals(d Distribution, c Matrix) *mat.VecDense {
	pb := mat.NewVecDense(2, nil)
	pb.MulVec(c.m.T(), mat.NewVecDense(2, d.Probabilities()))
	return pb
}

//PosteriorEntropy returns H(A|b=column) using P(a|b) = P(b|a)P(a)/P(b).
// When b=column can not be observed the posterior entropy is 0.
func PosteriorEntropy(d Distribution, c Matrix, column int) float64 {
	return posteriorEntropy(d, c, column, Marginal(d, c, column))
}

func posteriorEntropy(d Distribution, c Matrix, column int, pb float64) float64 {
	if pb <= 0 {
		return 0
	}
	prior := d.Probabilities()
	posterior := make([]float64, len(prior))
	for a, pa := range prior {
		posterior[a] = c.At(a, column) * pa / pb
	}
	return entropy(posterior)
}

//ComputeMetrics calculates every information measure for the source d sent over channel c.
func ComputeMetrics(d Distribution, c Matrix) Metrics {
	pb := marginals(d, c)
	pb0, pb1 := pb.AtVec(0), pb.AtVec(1)

	m := Metrics{
		HA:        Entropy(d),
		HB:        entropy([]float64{pb0, pb1}),
		HAGivenB0: posteriorEntropy(d, c, 0, pb0),
		HAGivenB1: posteriorEntropy(d, c, 1, pb1),
		PB0:       pb0,
		PB1:       pb1,
	}
	m.Equivocation = pb0*m.HAGivenB0 + pb1*m.HAGivenB1
	m.MutualInformation = m.HA - m.Equivocation
	m.JointEntropy = m.HB + m.Equivocation
	m.Loss = m.JointEntropy - m.HA
	return m
}

func (m Metrics) String() string {
	buf := strings.Builder{}
	buf.WriteString(fmt.Sprintf("Source entropy H(A): %v\n", m.HA))
	buf.WriteString(fmt.Sprintf("Output entropy H(B): %v\n", m.HB))
	buf.WriteString(fmt.Sprintf("Posterior entropy H(A|b=0): %v\n", m.HAGivenB0))
	buf.WriteString(fmt.Sprintf("Posterior entropy H(A|b=1): %v\n", m.HAGivenB1))
	buf.WriteString(fmt.Sprintf("Equivocation H(A|B): %v\n", m.Equivocation))
	buf.WriteString(fmt.Sprintf("Mutual information I(A;B): %v\n", m.MutualInformation))
	buf.WriteString(fmt.Sprintf("Joint entropy H(A,B): %v\n", m.JointEntropy))
	buf.WriteString(fmt.Sprintf("Loss H(B|A): %v\n", m.Loss))
	return buf.String()
}
