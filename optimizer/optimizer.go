// Package optimizer provides gradient-based update strategies applying
// sparse gradients to a dense weight vector.
package optimizer

import "math"

// Gradient accumulates sparse per-feature gradient values. Missing
// entries are zero.
type Gradient map[int]float64

// Add accumulates v into the entry for feature id.
func (g Gradient) Add(id int, v float64) {
	g[id] += v
}

// Optimizer merges accumulated gradients into a weight vector, one
// update per call.
type Optimizer interface {
	// ApplyGradient performs one update. divisor scales the step like a
	// batch size; values below 1 are treated as 1.
	ApplyGradient(g Gradient, divisor float64)
	// Weights returns the live weight vector.
	Weights() []float64
	// FinalWeights returns the weights to use once training ends.
	FinalWeights() []float64
}

// SGD is plain stochastic gradient ascent with a fixed step size.
type SGD struct {
	weights []float64
	alpha   float64
}

// NewSGD wraps weights with a fixed-step updater. The slice is updated
// in place.
func NewSGD(weights []float64, alpha float64) *SGD {
	return &SGD{weights: weights, alpha: alpha}
}

// ApplyGradient adds alpha/divisor times each gradient entry to the
// corresponding weight.
func (s *SGD) ApplyGradient(g Gradient, divisor float64) {
	if divisor < 1 {
		divisor = 1
	}
	step := s.alpha / divisor
	for id, v := range g {
		s.weights[id] += step * v
	}
}

// Weights returns the live weight vector.
func (s *SGD) Weights() []float64 { return s.weights }

// FinalWeights returns the live weight vector.
func (s *SGD) FinalWeights() []float64 { return s.weights }

// Adagrad scales each feature's step by the inverse square root of that
// feature's accumulated squared gradient.
type Adagrad struct {
	weights []float64
	alpha   float64
	eps     float64
	sumSq   []float64
}

// NewAdagrad wraps weights with a per-feature adaptive updater.
func NewAdagrad(weights []float64, alpha float64) *Adagrad {
	return &Adagrad{
		weights: weights,
		alpha:   alpha,
		eps:     1e-8,
		sumSq:   make([]float64, len(weights)),
	}
}

// ApplyGradient performs one adaptive update, dividing each gradient
// entry by divisor before accumulating its square.
func (a *Adagrad) ApplyGradient(g Gradient, divisor float64) {
	if divisor < 1 {
		divisor = 1
	}
	for id, v := range g {
		v /= divisor
		a.sumSq[id] += v * v
		a.weights[id] += a.alpha * v / (a.eps + math.Sqrt(a.sumSq[id]))
	}
}

// Weights returns the live weight vector.
func (a *Adagrad) Weights() []float64 { return a.weights }

// FinalWeights returns the live weight vector.
func (a *Adagrad) FinalWeights() []float64 { return a.weights }
