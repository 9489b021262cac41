// Package hmm implements a hidden Markov model tagger estimated by
// smoothed maximum likelihood.
package hmm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Ericyuu1/NER/bio"
	"github.com/Ericyuu1/NER/corpus"
	"github.com/Ericyuu1/NER/viterbi"
	"github.com/Ericyuu1/NER/vocab"
)

// unkWord is the reserved vocabulary entry shared by rare and unseen
// words.
const unkWord = "UNK"

// Model holds HMM parameters as natural-log probabilities.
type Model struct {
	Tags  *vocab.Vocab
	Words *vocab.Vocab

	// Init[t] is the log probability of starting a sentence with tag t.
	Init *mat.VecDense
	// Transition[p][c] is the log probability of tag c following tag p.
	Transition *mat.Dense
	// Emission[t][w] is the log probability of word w under tag t.
	Emission *mat.Dense
}

// Scorer binds the model's log probabilities to a token sequence for the
// decoder. Words outside the vocabulary score through the UNK row.
func (m *Model) Scorer(tokens []corpus.Token) viterbi.Scorer {
	wordIDs := make([]int, len(tokens))
	for i, tok := range tokens {
		id := m.Words.IndexOf(tok.Word)
		if id < 0 {
			id = m.Words.IndexOf(unkWord)
		}
		wordIDs[i] = id
	}
	return &scorer{m: m, wordIDs: wordIDs}
}

type scorer struct {
	m       *Model
	wordIDs []int
}

func (s *scorer) ScoreInit(tag int) float64 {
	return s.m.Init.AtVec(tag)
}

func (s *scorer) ScoreTransition(prev, curr int) float64 {
	return s.m.Transition.At(prev, curr)
}

func (s *scorer) ScoreEmission(tag, position int) float64 {
	return s.m.Emission.At(tag, s.wordIDs[position])
}

// Decode tags tokens with the most likely tag sequence and extracts the
// resulting entity chunks.
func (m *Model) Decode(tokens []corpus.Token) (*corpus.LabeledSentence, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("hmm: cannot decode an empty sentence")
	}
	path, _ := viterbi.Decode(len(tokens), m.Tags.Len(), m.Scorer(tokens))
	tags := make([]string, len(path))
	for i, id := range path {
		tags[i] = m.Tags.Get(id)
	}
	return &corpus.LabeledSentence{
		Tokens: tokens,
		Chunks: bio.ChunksFromTags(tags),
	}, nil
}
