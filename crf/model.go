package crf

import (
	"fmt"
	"math"

	"github.com/Ericyuu1/NER/bio"
	"github.com/Ericyuu1/NER/corpus"
	"github.com/Ericyuu1/NER/viterbi"
	"github.com/Ericyuu1/NER/vocab"
)

// Model is a trained linear-chain CRF. Transitions carry no learned
// weights; BIO legality decides which paths exist at decode time.
type Model struct {
	Tags     *vocab.Vocab
	Features *vocab.Vocab
	Weights  []float64
}

// ScoreMatrix computes the [position][tag] emission scores for tokens
// against the frozen feature vocabulary.
func (m *Model) ScoreMatrix(tokens []corpus.Token) [][]float64 {
	T := m.Tags.Len()
	scores := make([][]float64, len(tokens))
	for i := range tokens {
		scores[i] = make([]float64, T)
		for y := 0; y < T; y++ {
			var sum float64
			for _, f := range ExtractFeatures(tokens, i, m.Tags.Get(y), m.Features, false) {
				sum += m.Weights[f]
			}
			scores[i][y] = sum
		}
	}
	return scores
}

// Scorer binds emission scores and the BIO legality mask to a token
// sequence for the decoder: Inside tags are forbidden at position 0 and
// illegal transitions score -Inf, while legal ones pass the previous
// score through unweighted.
func (m *Model) Scorer(tokens []corpus.Token) viterbi.Scorer {
	tags := make([]string, m.Tags.Len())
	for y := range tags {
		tags[y] = m.Tags.Get(y)
	}
	return &constrainedScorer{tags: tags, scores: m.ScoreMatrix(tokens)}
}

type constrainedScorer struct {
	tags   []string
	scores [][]float64 // [position][tag]
}

func (s *constrainedScorer) ScoreInit(tag int) float64 {
	if bio.IsInside(s.tags[tag]) {
		return math.Inf(-1)
	}
	return 0
}

func (s *constrainedScorer) ScoreTransition(prev, curr int) float64 {
	if bio.TransitionAllowed(s.tags[prev], s.tags[curr]) {
		return 0
	}
	return math.Inf(-1)
}

func (s *constrainedScorer) ScoreEmission(tag, position int) float64 {
	return s.scores[position][tag]
}

// Decode tags tokens with the highest-scoring legal tag sequence and
// extracts the resulting entity chunks.
func (m *Model) Decode(tokens []corpus.Token) (*corpus.LabeledSentence, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("crf: cannot decode an empty sentence")
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
