package hmm

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Ericyuu1/NER/corpus"
	"github.com/Ericyuu1/NER/vocab"
)

// Config holds estimation hyperparameters.
type Config struct {
	// Smoothing is added to every count cell before normalization so no
	// probability is zero.
	Smoothing float64
}

// DefaultConfig returns the reference smoothing constant.
func DefaultConfig() Config {
	return Config{Smoothing: 0.001}
}

// Train estimates a model from labeled sentences by maximum likelihood.
// Words seen fewer than twice in the corpus share the reserved UNK
// index, which unseen words also resolve to at decode time.
func Train(sentences []corpus.LabeledSentence, config Config) (*Model, error) {
	if len(sentences) == 0 {
		return nil, fmt.Errorf("hmm: empty training corpus")
	}

	// Word counts use raw forms; the rare-word cutoff below consults them
	// before any UNK substitution.
	counts := make(map[string]int)
	for _, sent := range sentences {
		for _, tok := range sent.Tokens {
			counts[tok.Word]++
		}
	}

	tags := vocab.New()
	words := vocab.New()
	words.Add(unkWord)
	for _, sent := range sentences {
		for _, tok := range sent.Tokens {
			wordIndex(words, counts, tok.Word)
		}
		for _, tag := range sent.BIOTags() {
			tags.Add(tag)
		}
	}
	T := tags.Len()
	W := words.Len()
	slog.Debug("HMM vocabularies built", "tags", T, "words", W)

	initData := make([]float64, T)
	transData := make([]float64, T*T)
	emitData := make([]float64, T*W)
	fill(initData, config.Smoothing)
	fill(transData, config.Smoothing)
	fill(emitData, config.Smoothing)
	init := mat.NewVecDense(T, initData)
	transition := mat.NewDense(T, T, transData)
	emission := mat.NewDense(T, W, emitData)

	for _, sent := range sentences {
		bioTags := sent.BIOTags()
		prev := -1
		for i, tok := range sent.Tokens {
			tagID := tags.Add(bioTags[i])
			wordID := wordIndex(words, counts, tok.Word)
			emission.Set(tagID, wordID, emission.At(tagID, wordID)+1)
			if i == 0 {
				init.SetVec(tagID, init.AtVec(tagID)+1)
			} else {
				transition.Set(prev, tagID, transition.At(prev, tagID)+1)
			}
			prev = tagID
		}
	}

	logNormalize(initData)
	for t := 0; t < T; t++ {
		logNormalize(transition.RawRowView(t))
		logNormalize(emission.RawRowView(t))
	}
	slog.Debug("HMM estimated", "sentences", len(sentences), "smoothing", config.Smoothing)

	return &Model{
		Tags:       tags,
		Words:      words,
		Init:       init,
		Transition: transition,
		Emission:   emission,
	}, nil
}

// wordIndex resolves a training word to its vocabulary id, mapping words
// seen fewer than twice to UNK.
func wordIndex(words *vocab.Vocab, counts map[string]int, word string) int {
	if counts[word] < 2 {
		return words.Add(unkWord)
	}
	return words.Add(word)
}

func fill(data []float64, v float64) {
	for i := range data {
		data[i] = v
	}
}

// logNormalize turns a count row into natural-log probabilities in
// place.
func logNormalize(row []float64) {
	sum := floats.Sum(row)
	for i := range row {
		row[i] = math.Log(row[i] / sum)
	}
}
