package ner

import (
	"fmt"

	"github.com/Ericyuu1/NER/bio"
	"github.com/Ericyuu1/NER/corpus"
)

// LabelMetrics holds chunk-level scores for a single entity label.
type LabelMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Correct   int
	Predicted int
	Gold      int
}

// EvalResult aggregates chunk-level scores over an evaluation corpus.
type EvalResult struct {
	Precision float64
	Recall    float64
	F1        float64
	Correct   int
	Predicted int
	Gold      int
	PerLabel  map[string]LabelMetrics
}

// Evaluate decodes every sentence with m and scores predicted chunks
// against gold chunks. A chunk counts as correct only when its start,
// end and label all match. Empty sentences are skipped.
func Evaluate(m Model, sentences []corpus.LabeledSentence) (*EvalResult, error) {
	result := &EvalResult{PerLabel: make(map[string]LabelMetrics)}

	for i := range sentences {
		sent := &sentences[i]
		if sent.Len() == 0 {
			continue
		}
		pred, err := m.Decode(sent.Tokens)
		if err != nil {
			return nil, fmt.Errorf("ner: %w", err)
		}

		gold := make(map[bio.Chunk]bool, len(sent.Chunks))
		for _, c := range sent.Chunks {
			gold[c] = true
			result.Gold++
			lm := result.PerLabel[c.Label]
			lm.Gold++
			result.PerLabel[c.Label] = lm
		}
		for _, c := range pred.Chunks {
			result.Predicted++
			lm := result.PerLabel[c.Label]
			lm.Predicted++
			if gold[c] {
				result.Correct++
				lm.Correct++
			}
			result.PerLabel[c.Label] = lm
		}
	}

	result.Precision, result.Recall, result.F1 = prf(result.Correct, result.Predicted, result.Gold)
	for label, lm := range result.PerLabel {
		lm.Precision, lm.Recall, lm.F1 = prf(lm.Correct, lm.Predicted, lm.Gold)
		result.PerLabel[label] = lm
	}
	return result, nil
}

func prf(correct, predicted, gold int) (p, r, f float64) {
	if predicted > 0 {
		p = float64(correct) / float64(predicted)
	}
	if gold > 0 {
		r = float64(correct) / float64(gold)
	}
	if p+r > 0 {
		f = 2 * p * r / (p + r)
	}
	return p, r, f
}
