package crf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Lattice holds the forward-backward quantities computed for one
// sequence.
type Lattice struct {
	Alpha [][]float64 // [position][tag] forward log scores
	Beta  [][]float64 // [position][tag] backward log scores
	LogZ  float64     // log partition function
}

// ForwardBackward runs both sweeps over a [position][tag] emission score
// matrix. The recursions carry no transition scores and sum over every
// tag pair; decoding legality is not applied here.
func ForwardBackward(scores [][]float64) *Lattice {
	N := len(scores)
	if N == 0 {
		return &Lattice{}
	}
	T := len(scores[0])

	alpha := make([][]float64, N)
	alpha[0] = make([]float64, T)
	copy(alpha[0], scores[0])
	for t := 1; t < N; t++ {
		alpha[t] = make([]float64, T)
		prev := floats.LogSumExp(alpha[t-1])
		for y := 0; y < T; y++ {
			alpha[t][y] = scores[t][y] + prev
		}
	}

	beta := make([][]float64, N)
	beta[N-1] = make([]float64, T)
	scratch := make([]float64, T)
	for t := N - 2; t >= 0; t-- {
		beta[t] = make([]float64, T)
		for y := 0; y < T; y++ {
			scratch[y] = beta[t+1][y] + scores[t+1][y]
		}
		next := floats.LogSumExp(scratch)
		for y := 0; y < T; y++ {
			beta[t][y] = next
		}
	}

	return &Lattice{
		Alpha: alpha,
		Beta:  beta,
		LogZ:  floats.LogSumExp(alpha[N-1]),
	}
}

// Posterior returns the marginal probability of tag at position.
func (l *Lattice) Posterior(position, tag int) float64 {
	return math.Exp(l.Alpha[position][tag] + l.Beta[position][tag] - l.LogZ)
}
