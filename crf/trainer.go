package crf

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	shuffle "github.com/shogo82148/go-shuffle"
	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Ericyuu1/NER/corpus"
	"github.com/Ericyuu1/NER/optimizer"
	"github.com/Ericyuu1/NER/vocab"
)

// TrainerConfig holds CRF training hyperparameters.
type TrainerConfig struct {
	Epochs       int
	LearningRate float64
	// GradientDivisor scales each per-sentence update like a batch size.
	GradientDivisor float64
	// Seed drives weight initialization and epoch shuffling.
	Seed uint64
	// NewOptimizer builds the update strategy over the initial weight
	// vector. Left nil, training uses plain SGD at LearningRate.
	NewOptimizer func(weights []float64) optimizer.Optimizer
}

// DefaultTrainerConfig returns the reference configuration.
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Epochs:          20,
		LearningRate:    0.1,
		GradientDivisor: 10,
		Seed:            1,
	}
}

// Train fits a CRF on labeled sentences by per-sentence stochastic
// gradient ascent on the conditional log-likelihood. Feature extraction
// happens once up front; epochs then revisit the cached ids in shuffled
// sentence order, running the forward-backward sweeps against the live
// weights and applying one optimizer update per sentence.
func Train(sentences []corpus.LabeledSentence, config TrainerConfig) (*Model, error) {
	if len(sentences) == 0 {
		return nil, fmt.Errorf("crf: empty training corpus")
	}

	tags := vocab.New()
	for i := range sentences {
		for _, tag := range sentences[i].BIOTags() {
			tags.Add(tag)
		}
	}
	T := tags.Len()

	// The caching pass is the only phase that grows the feature
	// vocabulary; epochs and decoding see it frozen.
	slog.Debug("Caching CRF features", "sentences", len(sentences), "tags", T)
	features := vocab.New()
	cache := make([][][][]int, len(sentences))
	goldTags := make([][]int, len(sentences))
	for i := range sentences {
		sent := &sentences[i]
		bioTags := sent.BIOTags()
		cache[i] = make([][][]int, len(sent.Tokens))
		goldTags[i] = make([]int, len(sent.Tokens))
		for w := range sent.Tokens {
			cache[i][w] = make([][]int, T)
			for y := 0; y < T; y++ {
				cache[i][w][y] = ExtractFeatures(sent.Tokens, w, tags.Get(y), features, true)
			}
			goldTags[i][w] = tags.IndexOf(bioTags[w])
		}
	}
	slog.Debug("Feature cache built", "features", features.Len())

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: exprand.NewSource(config.Seed)}
	weights := make([]float64, features.Len())
	for i := range weights {
		weights[i] = uniform.Rand()
	}

	newOptimizer := config.NewOptimizer
	if newOptimizer == nil {
		newOptimizer = func(w []float64) optimizer.Optimizer {
			return optimizer.NewSGD(w, config.LearningRate)
		}
	}
	opt := newOptimizer(weights)

	shuffler := shuffle.New(rand.NewSource(int64(config.Seed)))
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}

	for epoch := 0; epoch < config.Epochs; epoch++ {
		start := time.Now()
		shuffler.Shuffle(sort.IntSlice(order))
		var ll float64
		for _, idx := range order {
			ll += trainSentence(opt, cache[idx], goldTags[idx], T, config.GradientDivisor)
		}
		slog.Debug("CRF training epoch", "epoch", epoch+1, "nll", -ll, "duration", time.Since(start))
	}

	return &Model{Tags: tags, Features: features, Weights: opt.FinalWeights()}, nil
}

// trainSentence applies one stochastic update for a single sentence and
// returns the sentence's log-likelihood under the pre-update weights.
func trainSentence(opt optimizer.Optimizer, cache [][][]int, gold []int, numTags int, divisor float64) float64 {
	N := len(cache)
	if N == 0 {
		return 0
	}
	weights := opt.Weights()

	scores := make([][]float64, N)
	for w := 0; w < N; w++ {
		scores[w] = make([]float64, numTags)
		for y := 0; y < numTags; y++ {
			var sum float64
			for _, f := range cache[w][y] {
				sum += weights[f]
			}
			scores[w][y] = sum
		}
	}

	lattice := ForwardBackward(scores)

	// Gradient of the log-likelihood: gold feature counts minus expected
	// feature counts under the posteriors.
	grad := optimizer.Gradient{}
	var ll float64
	for w := 0; w < N; w++ {
		ll += scores[w][gold[w]]
		for _, f := range cache[w][gold[w]] {
			grad.Add(f, 1)
		}
		for y := 0; y < numTags; y++ {
			p := lattice.Posterior(w, y)
			for _, f := range cache[w][y] {
				grad.Add(f, -p)
			}
		}
	}
	ll -= lattice.LogZ

	opt.ApplyGradient(grad, divisor)
	return ll
}
