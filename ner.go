// Package ner trains and applies named-entity taggers over tokenized,
// part-of-speech annotated sentences.
//
// Two model families share one decoding interface: a hidden Markov model
// estimated from smoothed tag and word counts, and a feature-based
// linear-chain conditional random field trained by stochastic gradient
// ascent.
//
//	sentences, _ := corpus.Read("train.conll")
//	model, _ := crf.Train(sentences, crf.DefaultTrainerConfig())
//	tagged, _ := model.Decode(sentences[0].Tokens)
//	for _, c := range tagged.Chunks {
//	    fmt.Println(c.Label) // "PER"
//	}
package ner

import (
	"github.com/Ericyuu1/NER/corpus"
)

// Model labels a tokenized sentence with BIO entity chunks.
type Model interface {
	Decode(tokens []corpus.Token) (*corpus.LabeledSentence, error)
}
